package app

import (
	"context"
	"fmt"

	"github.com/vk/buildgrid/internal/ctxlog"
	"github.com/vk/buildgrid/internal/form"
	"github.com/vk/buildgrid/internal/plan"
	"github.com/vk/buildgrid/internal/render"
)

// Run builds every requested building and renders the results.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var (
		results []render.Result
		err     error
	)
	if a.config.PlanPath != "" {
		results, err = a.runPlan(ctx)
	} else {
		results, err = a.runForm(ctx)
	}
	if err != nil {
		return err
	}

	if err := render.Write(a.outW, a.config.Format, results); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "buildings", len(results))
	return nil
}

func (a *App) runForm(ctx context.Context) ([]render.Result, error) {
	in := form.Input{
		Kind:   a.config.Form.Kind,
		Floors: a.config.Form.Floors,
		Color:  a.config.Form.Color,
		Recipe: a.config.Form.Recipe,
	}
	b, err := form.Submit(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to build: %w", err)
	}
	a.logger.Info("Building built.", "type", b.Type())
	return []render.Result{{Name: "form", Building: b}}, nil
}

func (a *App) runPlan(ctx context.Context) ([]render.Result, error) {
	p, err := plan.Load(ctx, a.config.PlanPath, a.loaders...)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	a.logger.Info("Plan loaded.", "path", a.config.PlanPath, "orders", len(p.Orders))

	results := make([]render.Result, 0, len(p.Orders))
	for _, o := range p.Orders {
		b, err := form.Submit(ctx, form.Input{
			Kind:   o.Kind,
			Floors: o.Floors,
			Color:  o.Color,
			Recipe: o.Recipe,
		})
		if err != nil {
			return nil, fmt.Errorf("order %q (%s): %w", o.Name, o.Source, err)
		}
		a.logger.Debug("Order built.", "order", o.Name, "type", b.Type())
		results = append(results, render.Result{Name: o.Name, Building: b})
	}

	if len(results) == 0 {
		a.logger.Warn("Plan has no orders, nothing to build.")
	}
	return results, nil
}
