package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/keypath/pkg/container"
	"github.com/mesh-intelligence/keypath/pkg/keypath"
)

// Sensor is a sample reading source for the demonstration.
type Sensor struct {
	ID      string
	Reading int
}

// Station owns at most one sensor; stations without one exercise the
// partial-read paths.
type Station struct {
	ID     string
	Name   string
	Sensor container.Option[Sensor]
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a keypath demonstration over generated sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(resolveConfigDir())
			if err != nil {
				return err
			}
			log := newLogger()

			count := cfg.GetInt(cfgKeyStations)
			if count <= 0 {
				return fmt.Errorf("%s must be positive, got %d", cfgKeyStations, count)
			}
			stations := generateStations(count, cfg.GetBool(cfgKeySeedGaps))
			log.Debug().Int("stations", len(stations)).Msg("generated sample data")

			out := cmd.OutOrStdout()

			// A partial read composed through the optional sensor shell.
			toShell := keypath.Readable(func(s *Station) *container.Option[Sensor] { return &s.Sensor })
			reading := keypath.Compose(toShell, keypath.ForOption(
				keypath.Readable(func(s *Sensor) *int { return &s.Reading }),
			))
			log.Debug().Stringer("kind", reading.Kind()).Msg("composed station reading keypath")

			fmt.Fprintln(out, "station readings:")
			for i := range stations {
				if v := reading.Get(&stations[i]); v != nil {
					fmt.Fprintf(out, "  %-10s %d\n", stations[i].Name, *v)
				} else {
					fmt.Fprintf(out, "  %-10s no sensor\n", stations[i].Name)
				}
			}

			// Bulk traversal collects only the stations with sensors.
			roots := make([]*Station, len(stations))
			for i := range stations {
				roots[i] = &stations[i]
			}
			fmt.Fprintf(out, "sensors present: %d of %d\n", len(reading.GetAll(roots)), len(stations))

			// An owned read through a lock-guarded station: the value is
			// copied out before the guard is released, so a later external
			// write is observed by the next read.
			guarded := container.NewMutex(stations[0])
			name := keypath.ForMutex(keypath.Readable(func(s *Station) *string { return &s.Name }))
			before := name.GetOwned(guarded)
			station := guarded.Lock()
			station.Name = station.Name + " (renamed)"
			guarded.Unlock()
			after := name.GetOwned(guarded)
			fmt.Fprintf(out, "guarded name: %q then %q\n", before, after)
			log.Debug().Str("before", before).Str("after", after).Msg("lock-backed owned reads")

			// Erased keypaths over different value types share one slice.
			erased := []keypath.FullyErased{
				keypath.Erase(reading),
				keypath.Erase(keypath.Readable(func(s *Station) *string { return &s.ID })),
			}
			labels := []string{"reading", "id"}
			for i, path := range erased {
				if v := path.Get(&stations[0]); v != nil {
					fmt.Fprintf(out, "erased %s: %v\n", labels[i], indirect(v))
				} else {
					fmt.Fprintf(out, "erased %s: absent\n", labels[i])
				}
			}

			return nil
		},
	}
}

// generateStations builds count sample stations; with gaps enabled every
// third station has no sensor.
func generateStations(count int, gaps bool) []Station {
	stations := make([]Station, count)
	for i := range stations {
		stations[i] = Station{
			ID:   uuid.Must(uuid.NewV7()).String(),
			Name: fmt.Sprintf("station-%d", i+1),
		}
		if gaps && i%3 == 2 {
			stations[i].Sensor = container.None[Sensor]()
			continue
		}
		stations[i].Sensor = container.Some(Sensor{
			ID:      uuid.Must(uuid.NewV7()).String(),
			Reading: 100 + i*7,
		})
	}
	return stations
}

// indirect unwraps the pointer handles erased reads return, for printing.
func indirect(v any) any {
	switch p := v.(type) {
	case *int:
		return *p
	case *string:
		return *p
	default:
		return v
	}
}
