package bookingflow

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mistvalley/booking-engine/internal/domain"
	checkAvailability "github.com/mistvalley/booking-engine/internal/usecase/check_availability"
	createBooking "github.com/mistvalley/booking-engine/internal/usecase/create_booking"
)

// Flow контроллер одной сессии формы бронирования.
//
// Flow — единственный писатель своего черновика и результата доступности;
// компоненты отображения подписываются на снапшоты и шлют события полей.
// Мьютекс сериализует события: Go-рендеринг однопоточного событийного цикла
// исходной формы. Единственные точки ожидания внешнего результата — проверка
// доступности и отправка бронирования.
type Flow struct {
	mu sync.Mutex

	id           string
	checker      AvailabilityChecker
	submitter    BookingSubmitter
	timeProvider TimeProvider
	logger       Logger

	state              State
	room               *domain.RoomType
	draft              domain.BookingDraft
	availability       *domain.AvailabilityResult
	availabilityStatus AvailabilityStatus
	pricing            *domain.PricingBreakdown
	fieldErrors        map[string]string
	lastError          string
	bookingReference   string

	// currentCheck ключ проверки в полёте; устаревшие ответы отбрасываются
	currentCheck checkKey

	subscribers []func(Snapshot)
}

// NewFlow создает новый поток бронирования
func NewFlow(checker AvailabilityChecker, submitter BookingSubmitter, logger Logger) *Flow {
	return &Flow{
		id:                 uuid.NewString(),
		checker:            checker,
		submitter:          submitter,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		state:              StateIdle,
		draft:              domain.NewBookingDraft(),
		availabilityStatus: AvailabilityUnknown,
		fieldErrors:        map[string]string{},
	}
}

// ID возвращает идентификатор сессии потока.
func (f *Flow) ID() string {
	return f.id
}

// Subscribe регистрирует наблюдателя. Наблюдатель получает снапшот после
// каждого изменения состояния; явная передача сообщений вместо широковещания.
func (f *Flow) Subscribe(fn func(Snapshot)) {
	f.mu.Lock()
	f.subscribers = append(f.subscribers, fn)
	snapshot := f.snapshotLocked()
	f.mu.Unlock()

	fn(snapshot)
}

// Snapshot возвращает копию текущего состояния потока.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// SelectRoom обрабатывает выбор типа комнаты. Прежние результат доступности
// и разбивка цены привязаны к старой комнате и сбрасываются немедленно;
// если даты уже выбраны и валидны, проверка перезапускается сама.
func (f *Flow) SelectRoom(ctx context.Context, room domain.RoomType) {
	f.mu.Lock()

	f.room = &room
	f.draft.RoomID = room.ID
	f.draft.RoomTypeName = room.Name
	f.draft.PricePerNight = room.EffectivePrice()

	// Смена типа комнаты снимает ручной выбор числа комнат
	f.draft.RoomCountSource = domain.RoomCountAuto

	f.discardAvailabilityLocked()
	f.state = StateRoomSelected
	f.lastError = ""

	f.applyRecommendationLocked()
	f.revalidateCountsLocked()
	f.recomputePricingLocked()

	if !f.draft.Dates.IsZero() && f.dateRangeValidLocked() {
		f.startAvailabilityCheckLocked(ctx)
	}

	f.logger.Info("flow %s: room selected id=%s name=%s", f.id, room.ID, room.Name)
	f.unlockAndNotify()
}

// SelectDates обрабатывает выбор диапазона дат. Невалидный диапазон даёт
// inline-ошибку и не запускает проверку; валидный запускает асинхронную
// проверку доступности, на время которой отправка заблокирована.
func (f *Flow) SelectDates(ctx context.Context, checkIn, checkOut string) error {
	f.mu.Lock()

	if f.room == nil {
		f.mu.Unlock()
		return ErrNoRoomSelected
	}

	in, errIn := domain.ParseDate(checkIn)
	out, errOut := domain.ParseDate(checkOut)
	if errIn != nil || errOut != nil {
		f.fieldErrors["dates"] = domain.ErrDatesRequired.Error()
		f.discardAvailabilityLocked()
		f.state = StateRoomSelected
		f.unlockAndNotify()
		return domain.ErrDatesRequired
	}

	f.draft.Dates = domain.DateRange{CheckIn: in, CheckOut: out}

	if err := domain.ValidateDateRange(in, out, f.timeProvider.Now()); err != nil {
		f.fieldErrors["dates"] = err.Error()
		f.discardAvailabilityLocked()
		f.state = StateRoomSelected
		f.recomputePricingLocked()
		f.unlockAndNotify()
		return err
	}

	delete(f.fieldErrors, "dates")
	f.discardAvailabilityLocked()
	f.state = StateDatesSelected
	f.recomputePricingLocked()
	f.startAvailabilityCheckLocked(ctx)

	f.logger.Info("flow %s: dates selected %s..%s", f.id, checkIn, checkOut)
	f.unlockAndNotify()
	return nil
}

// SetGuests обрабатывает изменение числа гостей. Смена числа гостей всегда
// снимает ручной выбор комнат: прежний выбор не обязан подходить новым
// гостям, авторекомендация возобновляется даже при уменьшении.
func (f *Flow) SetGuests(guests int) {
	f.mu.Lock()

	if guests < 0 {
		guests = 0
	}
	f.draft.Guests = guests
	f.draft.ClampChildren()

	f.draft.RoomCountSource = domain.RoomCountAuto
	f.applyRecommendationLocked()
	f.revalidateCountsLocked()
	f.recomputePricingLocked()
	f.recomputeVerdictLocked()

	f.unlockAndNotify()
}

// SetChildren обрабатывает изменение числа детей. Детей не меньше нуля и
// строго меньше гостей: хотя бы один взрослый.
func (f *Flow) SetChildren(children int) {
	f.mu.Lock()

	if children < 0 {
		children = 0
	}
	f.draft.Children = children
	f.draft.ClampChildren()
	f.revalidateCountsLocked()

	f.unlockAndNotify()
}

// SetRoomCount обрабатывает ручное изменение числа комнат. Значение
// зажимается в физические пределы типа; недобор под гостей остаётся
// inline-ошибкой. Ручной выбор не перетирается авторекомендацией, пока
// не изменятся гости или тип комнаты.
func (f *Flow) SetRoomCount(rooms int) {
	f.mu.Lock()

	profile := f.profileLocked()
	if rooms < domain.MinRoomCount {
		rooms = domain.MinRoomCount
	}
	if rooms > profile.MaxRoomsOfType {
		rooms = profile.MaxRoomsOfType
	}

	f.draft.RoomCount = rooms
	f.draft.RoomCountSource = domain.RoomCountManual

	f.revalidateCountsLocked()
	f.recomputePricingLocked()
	f.recomputeVerdictLocked()

	f.unlockAndNotify()
}

// SetGuestName обрабатывает изменение имени гостя
func (f *Flow) SetGuestName(name string) {
	f.mu.Lock()
	f.draft.GuestName = name
	f.revalidateGuestFieldsLocked()
	f.unlockAndNotify()
}

// SetPhone обрабатывает изменение телефона
func (f *Flow) SetPhone(phone string) {
	f.mu.Lock()
	f.draft.Phone = phone
	f.revalidateGuestFieldsLocked()
	f.unlockAndNotify()
}

// SetSpecialRequests обрабатывает изменение пожеланий
func (f *Flow) SetSpecialRequests(text string) {
	f.mu.Lock()
	f.draft.SpecialRequests = text
	f.revalidateGuestFieldsLocked()
	f.unlockAndNotify()
}

// Submit отправляет бронирование. Достижим только из состояния с известной
// и достаточной доступностью; usecase перепроверит её синхронно ещё раз.
// При неудаче поток возвращается в то же AvailabilityChecked, черновик
// сохраняется и гость может повторить без перепечатывания.
func (f *Flow) Submit(ctx context.Context) (*createBooking.Response, error) {
	f.mu.Lock()

	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrAlreadySubmitting
	}

	snapshot := f.snapshotLocked()
	if !snapshot.CanSubmit() {
		f.mu.Unlock()
		if len(snapshot.FieldErrors) > 0 {
			return nil, ErrDraftInvalid
		}
		return nil, ErrNotReadyToSubmit
	}

	req := &createBooking.Request{
		RoomID:          f.draft.RoomID,
		RoomTypeName:    f.draft.RoomTypeName,
		PricePerNight:   f.draft.PricePerNight,
		CheckIn:         f.draft.Dates.CheckIn,
		CheckOut:        f.draft.Dates.CheckOut,
		Guests:          f.draft.Guests,
		Children:        f.draft.Children,
		NumberOfRooms:   f.draft.RoomCount,
		GuestName:       f.draft.GuestName,
		Phone:           f.draft.Phone,
		SpecialRequests: f.draft.SpecialRequests,
	}

	f.state = StateSubmitting
	// Запущенная ранее проверка доступности могла ещё не завершиться.
	// Инвалидируем её ключ: поздний ответ не должен выбить поток из
	// Submitting и открыть дорогу повторной отправке.
	f.currentCheck = checkKey{}
	f.lastError = ""
	f.unlockAndNotify()

	resp, err := f.submitter.Execute(ctx, req)

	f.mu.Lock()
	if err != nil {
		// Возврат в прежнее известное состояние, данные гостя сохранены
		f.state = StateAvailabilityChecked
		f.lastError = err.Error()

		switch {
		case errors.Is(err, createBooking.ErrSoldOut):
			f.availabilityStatus = AvailabilitySoldOut
		case errors.Is(err, createBooking.ErrInsufficientRooms):
			f.availabilityStatus = AvailabilityInsufficient
		case errors.Is(err, createBooking.ErrAvailabilityUnknown):
			f.availabilityStatus = AvailabilityError
		}

		f.logger.Warn("flow %s: submission failed: %v", f.id, err)
		f.unlockAndNotify()
		return nil, err
	}

	f.logger.Info("flow %s: booking accepted, reference=%s", f.id, resp.BookingReference)
	f.bookingReference = resp.BookingReference
	f.resetLocked()
	f.unlockAndNotify()
	return resp, nil
}

// Reset сбрасывает поток в исходное состояние (teardown формы).
func (f *Flow) Reset() {
	f.mu.Lock()
	f.bookingReference = ""
	f.resetLocked()
	f.unlockAndNotify()
}

// ----------------------------------------------------------------------------
// внутреннее (вызывается только под мьютексом)

func (f *Flow) startAvailabilityCheckLocked(ctx context.Context) {
	key := checkKey{
		roomID:   f.draft.RoomID,
		checkIn:  domain.FormatDate(f.draft.Dates.CheckIn),
		checkOut: domain.FormatDate(f.draft.Dates.CheckOut),
	}
	f.currentCheck = key
	f.availabilityStatus = AvailabilityChecking

	req := &checkAvailability.Request{
		RoomID:         f.draft.RoomID,
		CheckIn:        f.draft.Dates.CheckIn,
		CheckOut:       f.draft.Dates.CheckOut,
		RequestedRooms: f.draft.RoomCount,
	}

	go func() {
		resp, err := f.checker.Execute(ctx, req)

		f.mu.Lock()
		if f.currentCheck != key {
			// Выбор уже изменился: поздний ответ не должен перетирать
			// более новое состояние
			f.logger.Info("flow %s: dropping stale availability response for %s %s..%s",
				f.id, key.roomID, key.checkIn, key.checkOut)
			f.mu.Unlock()
			return
		}

		f.state = StateAvailabilityChecked
		if err != nil {
			f.availability = nil
			f.availabilityStatus = AvailabilityError
			f.lastError = err.Error()
			f.logger.Warn("flow %s: availability check failed: %v", f.id, err)
		} else {
			f.availability = &domain.AvailabilityResult{
				Available:      resp.Available,
				AvailableRooms: resp.AvailableRooms,
				TotalRooms:     resp.TotalRooms,
				BookedRooms:    resp.BookedRooms,
			}
			f.lastError = ""
			f.recomputeVerdictLocked()
		}
		f.unlockAndNotify()
	}()
}

// discardAvailabilityLocked сбрасывает результат проверки в "неизвестно".
// Сбрасываем именно в unknown, а не в последний известный результат:
// гость не должен отправлять бронирование против устаревшей доступности.
func (f *Flow) discardAvailabilityLocked() {
	f.availability = nil
	f.availabilityStatus = AvailabilityUnknown
	f.currentCheck = checkKey{}
}

func (f *Flow) applyRecommendationLocked() {
	if f.room == nil || f.draft.RoomCountSource != domain.RoomCountAuto {
		return
	}
	if f.draft.Guests <= 0 {
		return
	}
	f.draft.RoomCount = domain.RecommendedRooms(f.draft.Guests, f.profileLocked())
}

func (f *Flow) recomputePricingLocked() {
	if f.room == nil || f.draft.Dates.IsZero() || f.draft.RoomCount <= 0 {
		f.pricing = nil
		return
	}

	nights := f.draft.Dates.Nights()
	breakdown := domain.ComputePricingBreakdown(f.room.EffectivePrice(), nights, f.draft.RoomCount)
	f.pricing = &breakdown
}

// recomputeVerdictLocked переоценивает достаточность известного результата
// под текущее число комнат. Сетевых запросов не делает.
func (f *Flow) recomputeVerdictLocked() {
	if f.availability == nil || f.state != StateAvailabilityChecked {
		return
	}

	switch {
	case !f.availability.Available || f.availability.IsSoldOut():
		f.availabilityStatus = AvailabilitySoldOut
	case !f.availability.CanAccommodate(f.draft.RoomCount):
		f.availabilityStatus = AvailabilityInsufficient
	default:
		f.availabilityStatus = AvailabilityOK
	}
}

func (f *Flow) revalidateCountsLocked() {
	profile := f.profileLocked()

	if f.room != nil && f.draft.Guests > profile.MaxGuestsTotal {
		f.fieldErrors["guests"] = "guest count exceeds room type capacity"
	} else {
		delete(f.fieldErrors, "guests")
	}

	if f.draft.Guests > 0 && f.draft.RoomCount < domain.MinimumRooms(f.draft.Guests, profile) {
		f.fieldErrors["numberOfRooms"] = "room count below minimum for guests"
	} else {
		delete(f.fieldErrors, "numberOfRooms")
	}
}

func (f *Flow) revalidateGuestFieldsLocked() {
	name := strings.TrimSpace(f.draft.GuestName)
	if name != "" && len(name) < domain.MinGuestNameLength {
		f.fieldErrors["name"] = "name is too short"
	} else if len(name) > domain.MaxGuestNameLength {
		f.fieldErrors["name"] = "name is too long"
	} else {
		delete(f.fieldErrors, "name")
	}

	digits := domain.CleanPhone(f.draft.Phone)
	if f.draft.Phone != "" && len(digits) != domain.PhoneDigits {
		f.fieldErrors["phone"] = "phone must be exactly 10 digits"
	} else {
		delete(f.fieldErrors, "phone")
	}

	text := strings.TrimSpace(f.draft.SpecialRequests)
	if len(text) > domain.MaxSpecialRequestChars || domain.CountWords(text) > domain.MaxSpecialRequestWords {
		f.fieldErrors["specialRequests"] = "special requests too long"
	} else {
		delete(f.fieldErrors, "specialRequests")
	}
}

func (f *Flow) dateRangeValidLocked() bool {
	return domain.ValidateDateRange(f.draft.Dates.CheckIn, f.draft.Dates.CheckOut, f.timeProvider.Now()) == nil
}

func (f *Flow) profileLocked() domain.CapacityProfile {
	if f.room == nil {
		return domain.CapacityProfileFor("")
	}
	return domain.CapacityProfileFor(f.room.Name)
}

func (f *Flow) resetLocked() {
	f.state = StateIdle
	f.room = nil
	f.draft = domain.NewBookingDraft()
	f.discardAvailabilityLocked()
	f.pricing = nil
	f.fieldErrors = map[string]string{}
	f.lastError = ""
}

func (f *Flow) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		FlowID:             f.id,
		State:              f.state,
		Draft:              f.draft,
		AvailabilityStatus: f.availabilityStatus,
		LastError:          f.lastError,
		BookingReference:   f.bookingReference,
		FieldErrors:        make(map[string]string, len(f.fieldErrors)),
	}

	for k, v := range f.fieldErrors {
		snapshot.FieldErrors[k] = v
	}

	if f.room != nil {
		room := *f.room
		snapshot.Room = &room
	}
	if f.availability != nil {
		availability := *f.availability
		snapshot.Availability = &availability
	}
	if f.pricing != nil {
		pricing := *f.pricing
		snapshot.Pricing = &pricing
	}

	return snapshot
}

// unlockAndNotify снимает мьютекс и рассылает снапшот подписчикам.
// Подписчики вызываются вне мьютекса: наблюдатель может дернуть поток.
func (f *Flow) unlockAndNotify() {
	snapshot := f.snapshotLocked()
	subscribers := make([]func(Snapshot), len(f.subscribers))
	copy(subscribers, f.subscribers)
	f.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}
