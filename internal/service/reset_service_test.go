package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResetHistory(t *testing.T) {
	t.Parallel()

	t.Run("clears history through the store", func(t *testing.T) {
		t.Parallel()
		resets := new(MockResetStore)
		resets.On("ResetHistory", mock.Anything).Return(nil)

		svc := NewResetService(newFakeDB(), resets, nil)

		err := svc.ResetHistory(context.Background())

		require.NoError(t, err)
		resets.AssertExpectations(t)
	})

	t.Run("wraps store failures with operation context", func(t *testing.T) {
		t.Parallel()
		resets := new(MockResetStore)
		resets.On("ResetHistory", mock.Anything).Return(errors.New("deadlock detected"))

		svc := NewResetService(newFakeDB(), resets, nil)

		err := svc.ResetHistory(context.Background())

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "reset_history", svcErr.Operation)
	})
}

func TestFullReset(t *testing.T) {
	t.Parallel()

	t.Run("clears everything through the store", func(t *testing.T) {
		t.Parallel()
		resets := new(MockResetStore)
		resets.On("FullReset", mock.Anything).Return(nil)

		svc := NewResetService(newFakeDB(), resets, nil)

		err := svc.FullReset(context.Background())

		require.NoError(t, err)
		resets.AssertExpectations(t)
	})

	t.Run("wraps store failures with operation context", func(t *testing.T) {
		t.Parallel()
		resets := new(MockResetStore)
		resets.On("FullReset", mock.Anything).Return(errors.New("deadlock detected"))

		svc := NewResetService(newFakeDB(), resets, nil)

		err := svc.FullReset(context.Background())

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "full_reset", svcErr.Operation)
	})
}
