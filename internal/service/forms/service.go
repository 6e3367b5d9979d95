package forms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
	"github.com/m04kA/SMC-TheatreBooking/internal/infra/cache/formsession"
)

// FieldEdit одно изменение поля формы
type FieldEdit struct {
	Field string
	Value string
}

// Service сервис сессий формы бронирования
type Service struct {
	store          FormStore
	machine        *bookingform.Machine
	requireAddress bool
	now            func() time.Time
	saveAttempts   int
	saveRetryDelay time.Duration
	logger         Logger
}

// NewService создает новый экземпляр сервиса форм
func NewService(
	store FormStore,
	activityRepo ActivityRepository,
	submitter BookingSubmitter,
	catalog bookingform.Catalog,
	metrics Metrics,
	requireAddress bool,
	logger Logger,
) *Service {
	tracker := &activityTracker{repo: activityRepo, metrics: metrics}
	return &Service{
		store:          store,
		machine:        bookingform.NewMachine(tracker, submitterFor(submitter), catalog, logger),
		requireAddress: requireAddress,
		now:            time.Now,
		saveAttempts:   3,
		saveRetryDelay: 100 * time.Millisecond,
		logger:         logger,
	}
}

// Create открывает новую форму на первом шаге
func (s *Service) Create(ctx context.Context) (*bookingform.Form, error) {
	form := bookingform.New(uuid.New(), s.requireAddress, s.now())

	if err := s.store.Save(ctx, form); err != nil {
		s.logger.Error("Create: failed to save form=%s: %v", form.ID, err)
		return nil, fmt.Errorf("%w: Create - save form: %v", ErrInternal, err)
	}

	s.logger.Info("Create: opened form=%s", form.ID)
	return form, nil
}

// Get возвращает текущее состояние формы
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*bookingform.Form, error) {
	return s.load(ctx, id)
}

// Update применяет правки по порядку. При первой ошибке ничего не сохраняется
func (s *Service) Update(ctx context.Context, id uuid.UUID, edits []FieldEdit) (*bookingform.Form, error) {
	return s.mutate(ctx, id, "Update", ErrFormBusy, func(form *bookingform.Form) error {
		for _, edit := range edits {
			if err := form.Set(edit.Field, edit.Value); err != nil {
				return err
			}
		}
		form.UpdatedAt = s.now()
		return nil
	})
}

// Next переводит форму на второй шаг
func (s *Service) Next(ctx context.Context, id uuid.UUID) (*bookingform.Form, error) {
	return s.mutate(ctx, id, "Next", ErrFormBusy, func(form *bookingform.Form) error {
		return s.machine.Next(ctx, form)
	})
}

// Back возвращает форму на первый шаг
func (s *Service) Back(ctx context.Context, id uuid.UUID) (*bookingform.Form, error) {
	return s.mutate(ctx, id, "Back", ErrFormBusy, func(form *bookingform.Form) error {
		return form.Back()
	})
}

// Submit сохраняет бронирование. Перед вызовом хранилища бронирований форма
// сохраняется в состоянии Submitting, поэтому повторный запрос получает
// bookingform.ErrSubmitInProgress даже после истечения блокировки
func (s *Service) Submit(ctx context.Context, id uuid.UUID) (*bookingform.Form, error) {
	// 1. Блокируем и загружаем форму
	release, err := s.lock(ctx, id, "Submit", bookingform.ErrSubmitInProgress)
	if err != nil {
		return nil, err
	}
	defer release()

	form, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. Проверяем второй шаг и переводим форму в Submitting
	if err := s.machine.BeginSubmit(ctx, form); err != nil {
		if !changesForm(err) {
			return nil, err
		}
		if saveErr := s.store.Save(ctx, form); saveErr != nil {
			s.logger.Error("Submit: failed to save form=%s: %v", id, saveErr)
			return nil, fmt.Errorf("%w: Submit - save form: %v", ErrInternal, saveErr)
		}
		return form, err
	}

	// 3. Фиксируем Submitting до создания бронирования
	if err := s.store.Save(ctx, form); err != nil {
		s.logger.Error("Submit: failed to save submitting form=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Submit - save form: %v", ErrInternal, err)
	}

	// 4. Создаем бронирование
	_, submitErr := s.machine.CompleteSubmit(ctx, form)
	if submitErr != nil && !changesForm(submitErr) {
		return nil, submitErr
	}

	// 5. Сохраняем итог с повторами
	if err := s.saveWithRetry(ctx, form); err != nil {
		if submitErr == nil {
			// Бронирование создано, в хранилище форма остаётся в Submitting
			s.logger.Error("Submit: form=%s booking=%s confirmed but not saved: %v", id, form.Receipt.BookingID, err)
			return form, nil
		}
		s.logger.Error("Submit: failed to save form=%s after failed submit: %v", id, err)
		return nil, fmt.Errorf("%w: Submit - save form: %v", ErrInternal, err)
	}

	return form, submitErr
}

// Reset очищает форму и возвращает её на первый шаг
func (s *Service) Reset(ctx context.Context, id uuid.UUID) (*bookingform.Form, error) {
	return s.mutate(ctx, id, "Reset", ErrFormBusy, func(form *bookingform.Form) error {
		form.Reset(s.now())
		return nil
	})
}

// Discard удаляет сессию формы
func (s *Service) Discard(ctx context.Context, id uuid.UUID) error {
	release, err := s.lock(ctx, id, "Discard", ErrFormBusy)
	if err != nil {
		return err
	}
	defer release()

	if _, err := s.load(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("Discard: failed to delete form=%s: %v", id, err)
		return fmt.Errorf("%w: Discard - delete form: %v", ErrInternal, err)
	}

	s.logger.Info("Discard: form=%s deleted", id)
	return nil
}

// mutate загружает форму под блокировкой, применяет fn и сохраняет результат.
// Ошибки валидации и неудачной отправки меняют форму, поэтому она сохраняется
// и возвращается вместе с ошибкой
func (s *Service) mutate(
	ctx context.Context,
	id uuid.UUID,
	op string,
	busyErr error,
	fn func(form *bookingform.Form) error,
) (*bookingform.Form, error) {
	// 1. Блокируем форму
	release, err := s.lock(ctx, id, op, busyErr)
	if err != nil {
		return nil, err
	}
	defer release()

	// 2. Загружаем состояние
	form, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. Применяем изменение
	fnErr := fn(form)
	if fnErr != nil && !changesForm(fnErr) {
		return nil, fnErr
	}

	// 4. Сохраняем
	if err := s.store.Save(ctx, form); err != nil {
		s.logger.Error("%s: failed to save form=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - save form: %v", ErrInternal, op, err)
	}

	return form, fnErr
}

// saveWithRetry сохраняет форму до saveAttempts раз, не завися от отмены запроса
func (s *Service) saveWithRetry(ctx context.Context, form *bookingform.Form) error {
	ctx = context.WithoutCancel(ctx)

	var err error
	for attempt := 1; attempt <= s.saveAttempts; attempt++ {
		if err = s.store.Save(ctx, form); err == nil {
			return nil
		}
		s.logger.Warn("Submit: save attempt %d/%d for form=%s failed: %v", attempt, s.saveAttempts, form.ID, err)
		if attempt < s.saveAttempts && s.saveRetryDelay > 0 {
			time.Sleep(s.saveRetryDelay)
		}
	}
	return err
}

// lock берёт блокировку формы и возвращает функцию её снятия
func (s *Service) lock(ctx context.Context, id uuid.UUID, op string, busyErr error) (func(), error) {
	token, ok, err := s.store.AcquireLock(ctx, id)
	if err != nil {
		s.logger.Error("%s: failed to lock form=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - lock form: %v", ErrInternal, op, err)
	}
	if !ok {
		s.logger.Warn("%s: form=%s is locked", op, id)
		return nil, busyErr
	}

	return func() {
		if err := s.store.ReleaseLock(context.WithoutCancel(ctx), id, token); err != nil {
			s.logger.Warn("%s: failed to release lock for form=%s: %v", op, id, err)
		}
	}, nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*bookingform.Form, error) {
	form, err := s.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, formsession.ErrSessionNotFound) {
			return nil, ErrFormNotFound
		}
		s.logger.Error("load: failed to load form=%s: %v", id, err)
		return nil, fmt.Errorf("%w: load form: %v", ErrInternal, err)
	}
	return form, nil
}

// changesForm ошибки, после которых форма всё равно изменилась
func changesForm(err error) bool {
	return errors.Is(err, bookingform.ErrValidation) || errors.Is(err, bookingform.ErrSubmitFailed)
}
