package errors_test

import (
	"fmt"
	"testing"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsDomainErrorAndStack(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrTokenInvalid.WithMessage("Invalid access token"), "refresh failed")

	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid access token", appErr.Message())

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsDomainErrorAndStack")
}

func TestNew_HasNoStack(t *testing.T) {
	err := errors.New("plain")

	assert.Equal(t, "plain", fmt.Sprintf("%+v", err))
	assert.Contains(t, fmt.Sprintf("%+v", errors.WithStack(err)), "TestNew_HasNoStack")
}
