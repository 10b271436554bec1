package validation_test

import (
	"testing"

	"courtly/internal/shared/utils/validation"

	"github.com/stretchr/testify/require"
)

type timedRequest struct {
	StartTime string `validate:"required,hhmm"`
	EndTime   string `validate:"required,hhmm"`
}

func TestHHMMRule(t *testing.T) {
	v := validation.New()

	require.NoError(t, v.Struct(&timedRequest{StartTime: "10:00", EndTime: "12:00"}))
	require.Error(t, v.Struct(&timedRequest{StartTime: "10:30", EndTime: "12:00"}))
	require.Error(t, v.Struct(&timedRequest{StartTime: "10:00", EndTime: "9:00"}))
	require.Error(t, v.Struct(&timedRequest{StartTime: "", EndTime: "12:00"}))
}
