package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/docfold/docfold/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := errors.New("test error")

		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		ctx := context.Background()

		errutil.HandleError(ctx, "test message", nil)
	})
}
