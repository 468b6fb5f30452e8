// Package board содержит доску активностей: загрузку, отрисовку, запись и отписку.
//
// Доска не знает, где она отображается: DOM-узлы оригинального интерфейса заменены
// зависимостями View и Confirmer, которые передаются при создании.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"activity-board/internal/model"
)

// API описывает контракт сервера активностей.
type API interface {
	ListActivities(ctx context.Context) (model.Activities, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (string, error)
}

// View описывает область страницы, которую перестраивает доска.
type View interface {
	MessageView
	ShowLoading()
	ShowUnavailable()
	Render(view BoardView)
	ResetForm()
}

// Confirmer спрашивает подтверждение у пользователя. Ответ приходит асинхронно;
// при отмене ctx возвращается ошибка контекста.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// OptionFunc настраивает Board.
type OptionFunc func(*options)

type options struct {
	log         *slog.Logger
	clock       Clock
	bannerDelay time.Duration
}

// WithLogger задаёт логгер.
func WithLogger(log *slog.Logger) OptionFunc {
	return func(o *options) { o.log = log }
}

// WithClock подменяет часы баннера.
func WithClock(c Clock) OptionFunc {
	return func(o *options) { o.clock = c }
}

// WithBannerDelay задаёт время показа сообщения.
func WithBannerDelay(d time.Duration) OptionFunc {
	return func(o *options) { o.bannerDelay = d }
}

// Board реализует доску активностей. Безопасна для вызова из нескольких горутин:
// сетевые вызовы идут без блокировки, изменения View сериализуются.
// Из нескольких запросов одной операции в View попадает только последний выданный.
type Board struct {
	api     API
	view    View
	confirm Confirmer
	banner  *Banner
	log     *slog.Logger

	mu    sync.Mutex
	tasks *taskSet
}

// New создаёт доску.
func New(api API, view View, confirm Confirmer, opts ...OptionFunc) *Board {
	o := options{
		log:         slog.Default(),
		clock:       realClock{},
		bannerDelay: DefaultBannerDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Board{
		api:     api,
		view:    view,
		confirm: confirm,
		banner:  NewBanner(view, o.clock, o.bannerDelay),
		log:     o.log,
		tasks:   newTaskSet(),
	}
}

// Close отменяет все выполняющиеся запросы.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks.cancelAll()
}

// LoadActivities загружает активности и перестраивает доску.
// При ошибке вместо списка показывается заглушка и сообщение об ошибке.
func (b *Board) LoadActivities(ctx context.Context) error {
	ctx, t := b.begin(ctx, OpLoad)
	defer b.end(t)

	if err := b.settle(ctx, t, b.view.ShowLoading); err != nil {
		return err
	}

	acts, err := b.api.ListActivities(ctx)
	if err != nil {
		text := textLoadFailed
		if isServerReported(err) {
			text = textLoadRejected
		}
		if serr := b.settle(ctx, t, func() {
			b.view.ShowUnavailable()
			b.banner.Show(text, KindError)
		}); serr != nil {
			return serr
		}
		b.log.Warn("load activities failed", slog.Any("err", err))
		return fmt.Errorf("load activities: %w", err)
	}

	return b.settle(ctx, t, func() {
		b.view.Render(RenderActivities(acts))
	})
}

// Submit записывает email на активность. Пустые поля проверяются локально, без запроса.
// После успешной записи доска перезагружается целиком и форма очищается.
func (b *Board) Submit(ctx context.Context, email, activity string) error {
	b.banner.Clear()

	email = strings.TrimSpace(email)
	if email == "" || activity == "" {
		b.banner.Show(textMissingFields, KindError)
		return ErrMissingFields
	}

	tctx, t := b.begin(ctx, OpSignup)
	defer b.end(t)

	msg, err := b.api.Signup(tctx, activity, email)
	if err != nil {
		if serr := b.settle(tctx, t, func() {
			b.banner.Show(failureText(err, textSignupFailed), KindError)
		}); serr != nil {
			return serr
		}
		return fmt.Errorf("signup: %w", err)
	}

	if err := b.settle(tctx, t, func() {
		b.banner.Show(orDefault(msg, textSignupOK), KindSuccess)
	}); err != nil {
		return err
	}

	// ошибки перезагрузки уже показаны самой загрузкой
	if err := b.LoadActivities(ctx); err != nil {
		b.log.Debug("reload after signup", slog.Any("err", err))
	}

	return b.settle(tctx, t, b.view.ResetForm)
}

// Unregister снимает участника с активности после подтверждения.
// Отказ от подтверждения не отправляет запрос и не меняет баннер.
func (b *Board) Unregister(ctx context.Context, activity, email string) error {
	tctx, t := b.begin(ctx, OpUnregister)
	defer b.end(t)

	ok, err := b.confirm.Confirm(tctx, fmt.Sprintf(textConfirmUnregister, email, activity))
	if err != nil {
		if b.superseded(t) {
			return ErrSuperseded
		}
		return fmt.Errorf("confirm: %w", err)
	}
	if !ok {
		return ErrDeclined
	}

	msg, err := b.api.Unregister(tctx, activity, email)
	if err != nil {
		if serr := b.settle(tctx, t, func() {
			b.banner.Show(failureText(err, textUnregisterFailed), KindError)
		}); serr != nil {
			return serr
		}
		return fmt.Errorf("unregister: %w", err)
	}

	if err := b.settle(tctx, t, func() {
		b.banner.Show(orDefault(msg, textUnregisterOK), KindSuccess)
	}); err != nil {
		return err
	}

	if err := b.LoadActivities(ctx); err != nil {
		b.log.Debug("reload after unregister", slog.Any("err", err))
	}
	return nil
}

func (b *Board) begin(ctx context.Context, op Op) (context.Context, *task) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctx, t, prev := b.tasks.start(ctx, op)
	if prev != nil {
		b.log.Debug("request superseded",
			slog.String("op", string(op)),
			slog.Uint64("task", prev.id),
			slog.Uint64("by", t.id),
		)
	}
	return ctx, t
}

func (b *Board) end(t *task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks.finish(t)
}

func (b *Board) superseded(t *task) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.tasks.current(t)
}

// settle применяет изменение View, только если запрос всё ещё последний
// и его контекст не отменён.
func (b *Board) settle(ctx context.Context, t *task, fn func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.tasks.current(t) {
		return ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	fn()
	return nil
}
