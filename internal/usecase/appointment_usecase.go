package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vetify/internal/delivery/dto"
	"vetify/internal/domain/entity"
	"vetify/internal/domain/repository"
	"vetify/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleConflict    = errors.New("veterinarian already has an appointment at that time")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// UrgencyFilterAll disables urgency filtering in GroupedByDay.
const UrgencyFilterAll = "todas"

// Spanish weekday names, Monday first.
var weekdayNames = [7]string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.AppointmentRequest) (*entity.Appointment, error)
	Update(ctx context.Context, id int, req *dto.AppointmentRequest) error
	Delete(ctx context.Context, id int) error
	GetDetail(ctx context.Context, id int) (*entity.AppointmentDetail, error)
	GetRaw(ctx context.Context, id int) (*entity.Appointment, error)
	ListToday(ctx context.Context) ([]entity.AppointmentRow, error)
	ListAll(ctx context.Context) ([]entity.AppointmentRow, error)
	GroupedByDay(ctx context.Context, urgencyFilter string) (*dto.AgendaView, error)
	CountToday(ctx context.Context) (int64, error)
	UrgencyCountsToday(ctx context.Context) (map[string]int, error)
	HasConflict(ctx context.Context, vetID int, scheduledAt time.Time, excludeID int) (bool, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// Create classifies the symptoms, guards the slot and persists the
// appointment with status "pendiente". The pre-check keeps the form flow
// friendly; the unique index on (vet_id, scheduled_at) is what actually
// closes the race between concurrent bookings.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.AppointmentRequest) (*entity.Appointment, error) {
	db := u.db.WithContext(ctx)
	slot := req.ScheduledAt.Format(entity.ScheduledAtLayout)

	count, err := u.appointmentRepo.CountAtSlot(db, req.VetID, slot, 0)
	if err != nil {
		u.log.Warnf("Failed to check schedule slot: %+v", err)
		return nil, err
	}
	if count > 0 {
		return nil, ErrScheduleConflict
	}

	appointment := &entity.Appointment{
		PetID:       req.PetID,
		VetID:       req.VetID,
		ScheduledAt: slot,
		ServiceType: req.ServiceType,
		Symptoms:    req.Symptoms,
		Urgency:     service.ClassifyUrgency(req.Symptoms),
		Status:      entity.StatusPendiente,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrScheduleConflict
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return appointment, nil
}

// Update recomputes urgency from the edited symptoms and overwrites all
// mutable fields; the slot check excludes the appointment itself so an
// unchanged timestamp never self-conflicts. Status is left untouched.
func (u *appointmentUsecase) Update(ctx context.Context, id int, req *dto.AppointmentRequest) error {
	db := u.db.WithContext(ctx)
	slot := req.ScheduledAt.Format(entity.ScheduledAtLayout)

	count, err := u.appointmentRepo.CountAtSlot(db, req.VetID, slot, id)
	if err != nil {
		u.log.Warnf("Failed to check schedule slot: %+v", err)
		return err
	}
	if count > 0 {
		return ErrScheduleConflict
	}

	appointment := &entity.Appointment{
		ID:          id,
		PetID:       req.PetID,
		VetID:       req.VetID,
		ScheduledAt: slot,
		ServiceType: req.ServiceType,
		Symptoms:    req.Symptoms,
		Urgency:     service.ClassifyUrgency(req.Symptoms),
	}

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		if isUniqueViolation(err) {
			return ErrScheduleConflict
		}
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int) error {
	if err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	return nil
}

func (u *appointmentUsecase) GetDetail(ctx context.Context, id int) (*entity.AppointmentDetail, error) {
	detail, err := u.appointmentRepo.FindDetailByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to load appointment %d: %+v", id, err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrAppointmentNotFound
	}
	return detail, nil
}

func (u *appointmentUsecase) GetRaw(ctx context.Context, id int) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to load appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (u *appointmentUsecase) ListToday(ctx context.Context) ([]entity.AppointmentRow, error) {
	return u.appointmentRepo.FindRowsByDate(u.db.WithContext(ctx), todayISO())
}

func (u *appointmentUsecase) ListAll(ctx context.Context) ([]entity.AppointmentRow, error) {
	return u.appointmentRepo.FindAllRows(u.db.WithContext(ctx))
}

// GroupedByDay filters the full time-ascending listing by urgency and
// partitions it into contiguous same-date groups: a new group starts
// whenever the date changes from the previous row. Counts always cover
// the unfiltered list so the filter tabs can show totals.
func (u *appointmentUsecase) GroupedByDay(ctx context.Context, urgencyFilter string) (*dto.AgendaView, error) {
	rows, err := u.appointmentRepo.FindAllRows(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	filter := strings.ToLower(urgencyFilter)

	counts := map[string]int{
		string(entity.UrgencyAlta):  0,
		string(entity.UrgencyMedia): 0,
		string(entity.UrgencyBaja):  0,
	}
	for _, row := range rows {
		urgency := strings.ToLower(row.Urgency)
		if _, ok := counts[urgency]; ok {
			counts[urgency]++
		}
	}

	filtered := rows
	if _, ok := counts[filter]; ok {
		filtered = make([]entity.AppointmentRow, 0, len(rows))
		for _, row := range rows {
			if strings.ToLower(row.Urgency) == filter {
				filtered = append(filtered, row)
			}
		}
	} else {
		filter = UrgencyFilterAll
	}

	var groups []dto.DayGroup
	currentDate := ""
	for _, row := range filtered {
		date := row.DateISO()
		if date != currentDate {
			currentDate = date
			groups = append(groups, dto.DayGroup{
				DateISO: date,
				Label:   dayLabel(date),
			})
		}
		last := len(groups) - 1
		groups[last].Items = append(groups[last].Items, row)
	}

	return &dto.AgendaView{
		Groups: groups,
		Counts: counts,
		Total:  len(filtered),
		Filter: filter,
	}, nil
}

func (u *appointmentUsecase) CountToday(ctx context.Context) (int64, error) {
	return u.appointmentRepo.CountByDate(u.db.WithContext(ctx), todayISO())
}

func (u *appointmentUsecase) UrgencyCountsToday(ctx context.Context) (map[string]int, error) {
	return u.appointmentRepo.CountByUrgencyOnDate(u.db.WithContext(ctx), todayISO())
}

// HasConflict reports whether the veterinarian already has another
// appointment at the exact instant. excludeID > 0 skips that
// appointment so an edit never conflicts with itself.
func (u *appointmentUsecase) HasConflict(ctx context.Context, vetID int, scheduledAt time.Time, excludeID int) (bool, error) {
	slot := scheduledAt.Format(entity.ScheduledAtLayout)
	count, err := u.appointmentRepo.CountAtSlot(u.db.WithContext(ctx), vetID, slot, excludeID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func todayISO() string {
	return time.Now().Format("2006-01-02")
}

// dayLabel renders a human-readable Spanish weekday+date heading such as
// "Lunes 05/01/2026".
func dayLabel(dateISO string) string {
	t, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return dateISO
	}
	// time.Weekday is Sunday-based; shift to Monday-based.
	name := weekdayNames[(int(t.Weekday())+6)%7]
	return fmt.Sprintf("%s %02d/%02d/%d", name, t.Day(), int(t.Month()), t.Year())
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
