package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestReadBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		err    error
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "bearer   abc", want: "abc"},
		{header: "", err: ErrNoAuthorizationHeader},
		{header: "Bearer", err: ErrBadAuthorizationHeader},
		{header: "Basic dXNlcjpwYXNz", err: ErrNotBearerToken},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				ctx.Request.Header.Set("Authorization", tt.header)
			}

			got, err := ReadBearerToken(ctx)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
