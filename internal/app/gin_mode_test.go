package app

import (
	"context"
	"testing"

	"github.com/Gunvolt24/pharma_inventory/internal/ports/mocks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

func TestApplyGinMode(t *testing.T) {
	prev := gin.Mode()
	t.Cleanup(func() { gin.SetMode(prev) })

	cases := []struct {
		in       string
		want     string
		warnings int
	}{
		{in: "release", want: gin.ReleaseMode},
		{in: " TEST ", want: gin.TestMode},
		{in: "", want: gin.DebugMode},
		{in: "verbose", want: gin.DebugMode, warnings: 1},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			log.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).Times(tc.warnings)

			applyGinMode(context.Background(), tc.in, log)
			if got := gin.Mode(); got != tc.want {
				t.Fatalf("mode %q: got %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}
