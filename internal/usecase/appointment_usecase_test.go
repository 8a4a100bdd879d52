package usecase

import (
	"context"
	"testing"
	"time"

	"vetify/internal/delivery/dto"
	"vetify/internal/domain/entity"
	"vetify/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentUsecase(db *gorm.DB) AppointmentUsecase {
	return NewAppointmentUsecase(db, testLogger(), repository.NewAppointmentRepository())
}

func bookingRequest(petID, vetID int, at time.Time, symptoms string) *dto.AppointmentRequest {
	return &dto.AppointmentRequest{
		PetID:       petID,
		VetID:       vetID,
		ScheduledAt: at,
		ServiceType: "Consulta",
		Symptoms:    symptoms,
	}
}

func TestAppointmentUsecase_ScheduleConflict(t *testing.T) {
	db := newTestDB(t)
	petID, vetIDs := seedClinic(t, db)
	u := newAppointmentUsecase(db)
	ctx := context.Background()

	slot := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	first, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], slot, ""))
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	assert.Equal(t, entity.StatusPendiente, first.Status)

	// Same vet, same instant: rejected.
	_, err = u.Create(ctx, bookingRequest(petID, vetIDs[0], slot, ""))
	assert.ErrorIs(t, err, ErrScheduleConflict)

	taken, err := u.HasConflict(ctx, vetIDs[0], slot, 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// Excluding the holder frees the slot for its own edit.
	taken, err = u.HasConflict(ctx, vetIDs[0], slot, first.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	// Different vet, same instant: fine.
	_, err = u.Create(ctx, bookingRequest(petID, vetIDs[1], slot, ""))
	require.NoError(t, err)

	// Adjacent minute is a different slot, not a conflict.
	_, err = u.Create(ctx, bookingRequest(petID, vetIDs[0], slot.Add(time.Minute), ""))
	require.NoError(t, err)

	// Editing the original onto its own slot must not self-conflict.
	err = u.Update(ctx, first.ID, bookingRequest(petID, vetIDs[0], slot, "revisión de rutina"))
	require.NoError(t, err)

	// But moving another appointment onto the taken slot is rejected.
	moved, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], slot.Add(2*time.Hour), ""))
	require.NoError(t, err)
	err = u.Update(ctx, moved.ID, bookingRequest(petID, vetIDs[0], slot, ""))
	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestAppointmentUsecase_CreateClassifiesUrgency(t *testing.T) {
	db := newTestDB(t)
	petID, vetIDs := seedClinic(t, db)
	u := newAppointmentUsecase(db)
	ctx := context.Background()

	at := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	appointment, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], at, "el perro está sangrando"))
	require.NoError(t, err)
	assert.Equal(t, entity.UrgencyAlta, appointment.Urgency)
	assert.Equal(t, "2024-03-05T10:00:00", appointment.ScheduledAt)
}

func TestAppointmentUsecase_UpdateRecomputesUrgencyKeepsStatus(t *testing.T) {
	db := newTestDB(t)
	petID, vetIDs := seedClinic(t, db)
	u := newAppointmentUsecase(db)
	ctx := context.Background()

	at := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	appointment, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], at, "revisión de rutina"))
	require.NoError(t, err)
	assert.Equal(t, entity.UrgencyBaja, appointment.Urgency)

	// Mark the appointment as attended outside the edit flow.
	require.NoError(t, db.Model(&entity.Appointment{}).
		Where("id = ?", appointment.ID).
		Update("status", "atendida").Error)

	err = u.Update(ctx, appointment.ID, bookingRequest(petID, vetIDs[1], at.Add(time.Hour), "tiene diarrea"))
	require.NoError(t, err)

	updated, err := u.GetRaw(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UrgencyMedia, updated.Urgency)
	assert.Equal(t, vetIDs[1], updated.VetID)
	assert.Equal(t, "2024-03-05T11:00:00", updated.ScheduledAt)
	// Status is not a mutable field of the edit flow.
	assert.Equal(t, "atendida", updated.Status)
}

func TestAppointmentUsecase_GroupedByDay(t *testing.T) {
	db := newTestDB(t)
	petID, vetIDs := seedClinic(t, db)
	u := newAppointmentUsecase(db)
	ctx := context.Background()

	// Two distinct dates, booked out of order; listing sorts by time.
	day1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	_, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], day2.Add(9*time.Hour), "tiene diarrea"))
	require.NoError(t, err)
	_, err = u.Create(ctx, bookingRequest(petID, vetIDs[0], day1.Add(11*time.Hour), "sangrado abundante"))
	require.NoError(t, err)
	_, err = u.Create(ctx, bookingRequest(petID, vetIDs[1], day1.Add(9*time.Hour), "revisión de rutina"))
	require.NoError(t, err)

	view, err := u.GroupedByDay(ctx, "todas")
	require.NoError(t, err)

	require.Len(t, view.Groups, 2)
	assert.Equal(t, "2024-01-10", view.Groups[0].DateISO)
	assert.Equal(t, "Miércoles 10/01/2024", view.Groups[0].Label)
	assert.Equal(t, "2024-01-11", view.Groups[1].DateISO)
	assert.Equal(t, "Jueves 11/01/2024", view.Groups[1].Label)

	// Items inside a group are time-ascending.
	require.Len(t, view.Groups[0].Items, 2)
	assert.Equal(t, "2024-01-10T09:00:00", view.Groups[0].Items[0].ScheduledAt)
	assert.Equal(t, "2024-01-10T11:00:00", view.Groups[0].Items[1].ScheduledAt)

	assert.Equal(t, 3, view.Total)
	assert.Equal(t, map[string]int{"alta": 1, "media": 1, "baja": 1}, view.Counts)
}

func TestAppointmentUsecase_GroupedByDayFilter(t *testing.T) {
	db := newTestDB(t)
	petID, vetIDs := seedClinic(t, db)
	u := newAppointmentUsecase(db)
	ctx := context.Background()

	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	_, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], day.Add(9*time.Hour), "sangrado"))
	require.NoError(t, err)
	_, err = u.Create(ctx, bookingRequest(petID, vetIDs[0], day.Add(10*time.Hour), "tiene tos"))
	require.NoError(t, err)
	_, err = u.Create(ctx, bookingRequest(petID, vetIDs[0], day.AddDate(0, 0, 1).Add(9*time.Hour), "hemorragia"))
	require.NoError(t, err)

	view, err := u.GroupedByDay(ctx, "alta")
	require.NoError(t, err)

	assert.Equal(t, "alta", view.Filter)
	assert.Equal(t, 2, view.Total)
	for _, group := range view.Groups {
		for _, item := range group.Items {
			assert.Equal(t, "alta", item.Urgency)
		}
	}
	// Counts always cover the unfiltered list.
	assert.Equal(t, map[string]int{"alta": 2, "media": 1, "baja": 0}, view.Counts)

	// Unknown filter values fall back to "todas".
	view, err = u.GroupedByDay(ctx, "URGENTE")
	require.NoError(t, err)
	assert.Equal(t, UrgencyFilterAll, view.Filter)
	assert.Equal(t, 3, view.Total)
}

func TestAppointmentUsecase_ListAllIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	petID, vetIDs := seedClinic(t, db)
	u := newAppointmentUsecase(db)
	ctx := context.Background()

	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], day.Add(time.Duration(9+i)*time.Hour), ""))
		require.NoError(t, err)
	}

	first, err := u.ListAll(ctx)
	require.NoError(t, err)
	second, err := u.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAppointmentUsecase_TodayFilter(t *testing.T) {
	db := newTestDB(t)
	petID, vetIDs := seedClinic(t, db)
	u := newAppointmentUsecase(db)
	ctx := context.Background()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 23, 30, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	_, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], yesterday, "sangrado"))
	require.NoError(t, err)
	todays, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], today, "tiene tos"))
	require.NoError(t, err)

	rows, err := u.ListToday(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, todays.ID, rows[0].ID)
	assert.Equal(t, "Rocky", rows[0].PetName)
	assert.Equal(t, "Laura Gómez", rows[0].OwnerName)
	assert.Equal(t, "Dr. Pérez", rows[0].VetName)

	count, err := u.CountToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	counts, err := u.UrgencyCountsToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"media": 1}, counts)
}

func TestAppointmentUsecase_DetailAndDelete(t *testing.T) {
	db := newTestDB(t)
	petID, vetIDs := seedClinic(t, db)
	u := newAppointmentUsecase(db)
	ctx := context.Background()

	at := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)
	appointment, err := u.Create(ctx, bookingRequest(petID, vetIDs[0], at, "cojea"))
	require.NoError(t, err)

	detail, err := u.GetDetail(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rocky", detail.PetName)
	assert.Equal(t, "laura@example.com", detail.OwnerEmail)
	assert.Equal(t, "Perros", detail.VetSpecialty)
	assert.Equal(t, "media", detail.Urgency)

	require.NoError(t, u.Delete(ctx, appointment.ID))

	_, err = u.GetDetail(ctx, appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = u.GetRaw(ctx, appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
