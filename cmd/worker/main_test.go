package main

import (
	"os"
	"testing"

	"github.com/unchin/unchin/internal/app"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("UNCHIN_TEST_MODE", "1")
	app.RefreshTestMode()
	os.Exit(m.Run())
}

func TestMainReturnsInTestMode(t *testing.T) {
	main()
}
