package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"kanbancal/internal/business/view"
	"kanbancal/internal/model"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	calendar   calendarService
	selections selectionRepository
}

type calendarService interface {
	SelectDate(date time.Time)
	ChangeWeek(delta int)
	Swipe(direction int)
	StartDrag(eventID, sourceKey string) error
	DragMove(dx, dy float64)
	DragOver(targetKey string)
	EndDrag() (bool, error)
	CancelDrag()
	CanOpenCard() bool
	MoveEvent(eventID, sourceKey, targetKey string) error
	MoveEventAndFollow(eventID string, direction int) error
	AddEvent(event *model.Event, dateKey string) error
	RemoveEvent(eventID, dateKey string) error
	EventsFor(dateKey string) []*model.Event
	EventDetail(eventID, dateKey string) (*model.Event, string, error)
	State() view.State
}

type selectionRepository interface {
	Get(ctx context.Context, session string) (string, error)
	Set(ctx context.Context, session, dateKey string) error
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	calendar calendarService,
	selections selectionRepository,
) (*Api, error) {
	a := &Api{
		logger:     logger,
		randSource: randSource,
		calendar:   calendar,
		selections: selections,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/calendar", func(r chi.Router) {
		r.Get("/", a.getCalendarHandler)
		r.Get("/version", a.getVersionHandler)
		r.Get("/can-open", a.canOpenHandler)

		r.Get("/date", a.getSelectedDateHandler)
		r.Post("/date", a.selectDateHandler)
		r.Post("/week", a.changeWeekHandler)
		r.Post("/swipe", a.swipeHandler)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", a.getEventsHandler)
			r.Post("/", a.addEventHandler)
			r.Get("/{id}", a.getEventHandler)
			r.Delete("/{id}", a.removeEventHandler)
			r.Post("/{id}/move", a.moveEventHandler)
		})

		r.Route("/drag", func(r chi.Router) {
			r.Post("/start", a.dragStartHandler)
			r.Post("/move", a.dragMoveHandler)
			r.Post("/over", a.dragOverHandler)
			r.Post("/end", a.dragEndHandler)
			r.Post("/cancel", a.dragCancelHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
