package outcomes

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/meta", metaHandler(svc))

	r.Route("/views", func(vr chi.Router) {
		vr.Get("/", listViewsHandler(svc))
		vr.Get("/{view}", computeViewHandler(svc))
	})

	r.Get("/pages/{page}", computePageHandler(svc))
	r.Post("/query", queryHandler(svc))
}

type errorResponse struct {
	Error string `json:"error"`
}

type queryResponse struct {
	DatasetID string   `json:"dataset_id"`
	Records   int      `json:"records"`
	Table     Table    `json:"table"`
	Warnings  []string `json:"warnings,omitempty"`
}

type pageResponse struct {
	Page  PageName            `json:"page"`
	Views map[ViewName]Result `json:"views"`
}

// metaHandler godoc
// @Summary Metadatos del dataset
// @Description Devuelve límites de fecha y edad, opciones de los filtros multi-select y los valores iniciales de cada página.
// @Tags meta
// @Produce json
// @Success 200 {object} Meta
// @Router /meta [get]
func metaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Meta())
	}
}

// listViewsHandler godoc
// @Summary Listar vistas
// @Description Lista las vistas built-in (con su página) y las definidas en VIEWS_FILE.
// @Tags views
// @Produce json
// @Success 200 {array} ViewInfo
// @Router /views [get]
func listViewsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Views())
	}
}

// computeViewHandler godoc
// @Summary Calcular una vista
// @Description Aplica los filtros del query string y devuelve tablas, KPIs u opciones según la vista.
// @Tags views
// @Produce json
// @Param view path string true "Nombre de la vista (p.ej. overview-kpis)"
// @Param start_date query string false "YYYY-MM-DD o RFC3339"
// @Param end_date query string false "YYYY-MM-DD o RFC3339"
// @Param age_min query int false "Edad mínima en meses (inclusive)"
// @Param age_max query int false "Edad máxima en meses (inclusive)"
// @Param sex query []string false "Sexo al egreso (repetible)" collectionFormat(multi)
// @Param breed query []string false "Raza (repetible)" collectionFormat(multi)
// @Param color query []string false "Color (repetible)" collectionFormat(multi)
// @Param outcome_type query string false "Tipo de outcome"
// @Param cfa_breed query bool false "Solo razas reconocidas por la CFA"
// @Param weekday query string false "Filtro del histograma por hora"
// @Param month query string false "Filtro del histograma por día"
// @Param year query string false "Filtro del histograma por mes"
// @Param period query string false "date | month_year | year"
// @Param bins query int false "Cantidad de rangos de edad (5 a 100)"
// @Param kpi query []string false "Categorías de KPI (máx. 3)" collectionFormat(multi)
// @Success 200 {object} Result
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /views/{view} [get]
func computeViewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ParseParams(r.URL.Query(), svc.Dataset())
		if err != nil {
			writeError(w, err)
			return
		}

		res, err := svc.Compute(r.Context(), ViewName(chi.URLParam(r, "view")), p)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// computePageHandler godoc
// @Summary Calcular todas las vistas de una página
// @Description Calcula en paralelo las vistas de overview, subtypes, distributions, age o breed. Acepta los mismos filtros que /views/{view}.
// @Tags pages
// @Produce json
// @Param page path string true "overview | subtypes | distributions | age | breed"
// @Success 200 {object} pageResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /pages/{page} [get]
func computePageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ParseParams(r.URL.Query(), svc.Dataset())
		if err != nil {
			writeError(w, err)
			return
		}

		page := PageName(chi.URLParam(r, "page"))
		views, err := svc.ComputePage(r.Context(), page, p)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, pageResponse{Page: page, Views: views})
	}
}

// queryHandler godoc
// @Summary Consulta ad-hoc
// @Description Ejecuta el pipeline filtros → rangos → igualdad → agrupación → porcentaje sobre el dataset completo.
// @Tags query
// @Accept json
// @Produce json
// @Param payload body Query true "Consulta; group_by admite de 1 a 3 columnas"
// @Success 200 {object} queryResponse
// @Failure 400 {object} errorResponse
// @Router /query [post]
func queryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q Query
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&q); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		t, err := svc.Run(r.Context(), q)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := queryResponse{DatasetID: svc.Dataset().ID, Records: t.Total(), Table: t}
		if resp.Records == 0 {
			resp.Warnings = []string{WarnEmptyResult}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// ParseParams traduce el query string a Params.
// Si llega un solo extremo de un rango, el otro se toma de los límites del dataset;
// solo dos extremos explícitos invertidos son un error.
func ParseParams(q url.Values, ds *Dataset) (Params, error) {
	var p Params

	start, end := strings.TrimSpace(q.Get("start_date")), strings.TrimSpace(q.Get("end_date"))
	if start != "" || end != "" {
		lo, hi := ds.DateBounds()
		dr := &DateRange{Start: lo, End: hi}
		if start != "" {
			t, err := parseDateParam(start)
			if err != nil {
				return Params{}, invalid("start_date", "%v", err)
			}
			dr.Start = t
		}
		if end != "" {
			t, err := parseDateParam(end)
			if err != nil {
				return Params{}, invalid("end_date", "%v", err)
			}
			dr.End = t
		}
		// Un solo extremo fuera de los datos da un rango vacío, no uno invertido.
		switch {
		case end == "" && dr.Start.After(dr.End):
			dr.End = dr.Start
		case start == "" && dr.End.Before(dr.Start):
			dr.Start = dr.End
		}
		p.Filters.Dates = dr
	}

	ageMin, ageMax := strings.TrimSpace(q.Get("age_min")), strings.TrimSpace(q.Get("age_max"))
	if ageMin != "" || ageMax != "" {
		ar := &AgeRange{Min: 0, Max: math.MaxInt32}
		if ageMin != "" {
			n, err := strconv.Atoi(ageMin)
			if err != nil {
				return Params{}, invalid("age_min", "must be an integer, got %q", ageMin)
			}
			ar.Min = n
		}
		if ageMax != "" {
			n, err := strconv.Atoi(ageMax)
			if err != nil {
				return Params{}, invalid("age_max", "must be an integer, got %q", ageMax)
			}
			ar.Max = n
		}
		p.Filters.Age = ar
	}

	p.Filters.Sexes = multi(q, "sex")
	p.Filters.Breeds = multi(q, "breed")
	p.Filters.Colors = multi(q, "color")

	if s := strings.TrimSpace(q.Get("cfa_breed")); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Params{}, invalid("cfa_breed", "must be a boolean, got %q", s)
		}
		p.Filters.CFABreed = &b
	}

	if s := strings.TrimSpace(q.Get("bins")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Params{}, invalid("bins", "must be an integer, got %q", s)
		}
		if n < MinBins || n > MaxBins {
			return Params{}, invalid("bins", "must be between %d and %d, got %d", MinBins, MaxBins, n)
		}
		p.Bins = &n
	}

	p.OutcomeType = strings.TrimSpace(q.Get("outcome_type"))
	p.Period = Column(strings.TrimSpace(q.Get("period")))
	p.KPIs = multi(q, "kpi")
	p.Weekday = strings.TrimSpace(q.Get("weekday"))
	p.Month = strings.TrimSpace(q.Get("month"))
	p.Year = strings.TrimSpace(q.Get("year"))

	return p, p.Filters.Validate()
}

func parseDateParam(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("must be YYYY-MM-DD or RFC3339")
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// multi lee un parámetro repetible (?sex=a&sex=b); vacíos se descartan.
func multi(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrUnknownView):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
