package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
)

func init() {
	// never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           booking-manager
// @version         1.0
// @description     Bookings and blocks for a single rentable property.

// @BasePath  /
// @schemes http https
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
