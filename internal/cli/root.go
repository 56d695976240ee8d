package cli

import (
	"github.com/fleetdeck/fleetdeck/internal/schedule"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

type Context struct {
	Store   *store.Store
	Planner *schedule.Planner
}
