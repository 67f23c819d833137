// Package hclplan loads build plans written in HCL:
//
//	building "Residential" "home" {
//	  recipe = "basic"
//	  floors = 4
//	  color  = "Red"
//	}
package hclplan

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/buildgrid/internal/ctxlog"
	"github.com/vk/buildgrid/internal/plan"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "building", LabelNames: []string{"kind", "name"}},
	},
}

// buildingBody is the content of a `building` block.
type buildingBody struct {
	Recipe string         `hcl:"recipe,optional"`
	Floors hcl.Expression `hcl:"floors,optional"`
	Color  *string        `hcl:"color,optional"`
}

// Loader implements plan.Loader for .hcl files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Extensions implements the plan.Loader interface.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load implements the plan.Loader interface.
func (l *Loader) Load(ctx context.Context, paths ...string) (*plan.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	p := &plan.Plan{}
	seen := make(map[string]hcl.Range)
	for _, path := range paths {
		logger.Debug("Decoding plan file.", "path", path)
		file, diags := l.parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
		}

		orders, diags := decodeFile(file.Body, path, seen)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %s", path, diags.Error())
		}
		p.Orders = append(p.Orders, orders...)
		logger.Debug("Successfully decoded plan file.", "path", path, "orders_found", len(orders))
	}
	return p, nil
}

func decodeFile(body hcl.Body, path string, seen map[string]hcl.Range) ([]*plan.Order, hcl.Diagnostics) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	var orders []*plan.Order
	for _, block := range content.Blocks {
		kind, name := block.Labels[0], block.Labels[1]
		if prev, ok := seen[name]; ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate building block",
				Detail:   fmt.Sprintf("A building named %q was already declared at %s.", name, prev),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		seen[name] = block.DefRange

		var b buildingBody
		blockDiags := gohcl.DecodeBody(block.Body, nil, &b)
		diags = append(diags, blockDiags...)
		if blockDiags.HasErrors() {
			continue
		}

		floors, floorDiags := rawText(b.Floors)
		diags = append(diags, floorDiags...)

		order := &plan.Order{
			Name:   name,
			Kind:   kind,
			Recipe: b.Recipe,
			Floors: floors,
			Source: path,
		}
		if b.Color != nil {
			order.Color = *b.Color
		}
		orders = append(orders, order)
	}
	return orders, diags
}

// rawText evaluates expr and renders it as a string, so floors = 4 and
// floors = "4" reach the form identically. A missing attribute yields "".
func rawText(expr hcl.Expression) (string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() || val.IsNull() {
		return "", diags
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid floors value",
			Detail:   fmt.Sprintf("The floors attribute must be a number or a string: %s.", err),
			Subject:  expr.Range().Ptr(),
		})
	}

	var s string
	if err := gocty.FromCtyValue(strVal, &s); err != nil {
		return "", append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid floors value",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		})
	}
	return s, diags
}
