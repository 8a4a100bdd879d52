package service

import (
	"testing"

	"vetify/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		name     string
		symptoms string
		want     entity.UrgencyLevel
	}{
		{
			name:     "bleeding is high",
			symptoms: "el perro está sangrando",
			want:     entity.UrgencyAlta,
		},
		{
			name:     "breathing difficulty is high",
			symptoms: "tiene dificultad para respirar desde anoche",
			want:     entity.UrgencyAlta,
		},
		{
			name:     "seizures are high",
			symptoms: "presenta convulsiones",
			want:     entity.UrgencyAlta,
		},
		{
			name:     "matching is case-insensitive",
			symptoms: "SANGRADO abundante",
			want:     entity.UrgencyAlta,
		},
		{
			name:     "wound with bleeding escalates to high",
			symptoms: "tiene una herida y hay sangrado",
			want:     entity.UrgencyAlta,
		},
		{
			name:     "opened stitches stay moderate",
			symptoms: "se le abrió la sutura",
			want:     entity.UrgencyMedia,
		},
		{
			name:     "stitches without bleeding fall to the tier default",
			symptoms: "tiene puntos pero no sangra",
			want:     entity.UrgencyMedia,
		},
		{
			name:     "post-op check is moderate",
			symptoms: "control post operatorio",
			want:     entity.UrgencyMedia,
		},
		{
			name:     "diarrhea and cough are moderate",
			symptoms: "tiene diarrea y tos",
			want:     entity.UrgencyMedia,
		},
		{
			name:     "limping is moderate",
			symptoms: "cojea de la pata trasera",
			want:     entity.UrgencyMedia,
		},
		{
			name:     "routine visit is low",
			symptoms: "revisión de rutina",
			want:     entity.UrgencyBaja,
		},
		{
			name:     "empty input is low",
			symptoms: "",
			want:     entity.UrgencyBaja,
		},
		{
			name:     "unaccented variant matches",
			symptoms: "esta muy debil",
			want:     entity.UrgencyAlta,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUrgency(tt.symptoms))
		})
	}
}

// The high tier must win even when moderate keywords are also present.
func TestClassifyUrgency_TierPriority(t *testing.T) {
	assert.Equal(t, entity.UrgencyAlta, ClassifyUrgency("tiene tos y no respira"))
	assert.Equal(t, entity.UrgencyAlta, ClassifyUrgency("la herida tiene hemorragia y además cojea"))
	assert.Equal(t, entity.UrgencyMedia, ClassifyUrgency("herida limpia pero tiene dolor"))
}
