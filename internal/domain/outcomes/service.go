package outcomes

import (
	"context"
	"fmt"
	"sort"
	"time"

	"shelter-outcomes/internal/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Service es el motor de consultas: dueño de un Dataset inmutable.
// Es seguro para uso concurrente; cada llamada trabaja sobre views locales.
type Service struct {
	ds     *Dataset
	custom map[ViewName]CustomView
	log    logger.Logger
	now    func() time.Time
}

type Option func(*Service)

// WithLogger setea el logger (por defecto no loguea).
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCustomViews registra vistas declaradas en YAML.
func WithCustomViews(views []CustomView) Option {
	return func(s *Service) {
		for _, cv := range views {
			s.custom[cv.Name] = cv
		}
	}
}

func NewService(ds *Dataset, opts ...Option) *Service {
	s := &Service{
		ds:     ds,
		custom: map[ViewName]CustomView{},
		log:    logger.Nop(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Dataset devuelve el handle inmutable.
func (s *Service) Dataset() *Dataset { return s.ds }

// Meta devuelve límites, opciones y defaults de página.
func (s *Service) Meta() Meta { return BuildMeta(s.ds) }

// Views lista las vistas built-in y las custom (orden alfabético las custom).
func (s *Service) Views() []ViewInfo {
	out := make([]ViewInfo, 0, len(builtinViews)+len(s.custom))
	for _, d := range builtinViews {
		out = append(out, d.info)
	}
	names := make([]string, 0, len(s.custom))
	for n := range s.custom {
		names = append(names, string(n))
	}
	sort.Strings(names)
	for _, n := range names {
		cv := s.custom[ViewName(n)]
		out = append(out, ViewInfo{Name: cv.Name, Description: cv.Description, Custom: true})
	}
	return out
}

// Compute resuelve una vista con nombre para los parámetros dados.
func (s *Service) Compute(ctx context.Context, name ViewName, p Params) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if len(p.Filters.Equals) > 0 {
		return Result{}, invalid("filters.equals", "not supported by views, use outcome_type, weekday, month or year")
	}

	start := s.now()
	var (
		res Result
		err error
	)
	if d, ok := lookupBuiltin(name); ok {
		res, err = d.run(s.ds, p)
	} else if cv, ok := s.custom[name]; ok {
		res, err = s.runCustom(cv, p)
	} else {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}

	fields := map[string]any{
		"view":        string(name),
		"duration_ms": s.now().Sub(start).Milliseconds(),
	}
	if f := p.Filters.Describe(); len(f) > 0 {
		fields["filters"] = f
	}
	if err != nil {
		fields["error"] = err.Error()
		s.log.Warn("view failed", fields)
		return Result{}, err
	}
	fields["records"] = res.Records
	s.log.Debug("view computed", fields)
	return res, nil
}

// ComputePage resuelve todas las vistas de una página en paralelo.
func (s *Service) ComputePage(ctx context.Context, page PageName, p Params) (map[ViewName]Result, error) {
	names := PageViews(page)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: page %q", ErrUnknownView, page)
	}

	results := make([]Result, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, n := range names {
		g.Go(func() error {
			r, err := s.Compute(gctx, n, p)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[ViewName]Result, len(names))
	for i, n := range names {
		out[n] = results[i]
	}
	return out, nil
}

// Run ejecuta una consulta ad-hoc sobre el dataset completo.
func (s *Service) Run(ctx context.Context, q Query) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}
	return Run(s.ds.All(), q)
}

func (s *Service) runCustom(cv CustomView, p Params) (Result, error) {
	t, err := Run(s.ds.All(), cv.resolve(p))
	if err != nil {
		return Result{}, err
	}
	r := newResult(s.ds, cv.Name, t.Total())
	r.Tables = map[string]Table{"main": t}
	if containsColumn(t.Keys, ColMonthYear) {
		r.AxisOrder = ChronologicalOrder(t.Column(ColMonthYear))
	}
	return r, nil
}
