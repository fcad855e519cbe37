package main

import (
	"log"
	"os"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/zeroshade/ferryapi/types"
)

// Seeds a development database with a small fleet for one operator.
func main() {
	URI := os.Getenv("DATABASE_URL")
	if URI == "" {
		log.Fatal("must set $DATABASE_URL")
	}

	operator := os.Getenv("SEED_OPERATOR")
	if operator == "" {
		operator = "demo-operator"
	}

	db, err := gorm.Open("postgres", URI)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	zone := types.Zone{OperatorID: operator, Name: "North Atoll", Code: "NA"}
	db.Save(&zone)

	male := types.Island{OperatorID: operator, Name: "Port Island", ZoneID: zone.ID, HasDock: true}
	hulhu := types.Island{OperatorID: operator, Name: "Lagoon Island", ZoneID: zone.ID, HasDock: true}
	db.Save(&male)
	db.Save(&hulhu)

	route := types.Route{
		OperatorID: operator,
		Name:       "Port - Lagoon Express",
		OriginID:   male.ID,
		DestID:     hulhu.ID,
		BaseFare:   25,
		DistanceKM: 8.5,
		Duration:   30,
		Status:     types.RouteActive,
	}
	db.Save(&route)

	vessel := types.Vessel{
		OperatorID: operator,
		Name:       "Sea Dragon",
		Capacity:   48,
		Color:      "0050a0",
		Status:     types.VesselInService,
	}
	db.Save(&vessel)

	start := time.Now().In(types.FleetLocation())
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		for _, dep := range []string{"07:30", "12:00", "17:30"} {
			db.Save(&types.Trip{
				OperatorID: operator,
				RouteID:    route.ID,
				VesselID:   vessel.ID,
				TravelDate: day,
				Departure:  dep,
				Arrival:    addHalfHour(dep),
				Status:     types.TripScheduled,
				FareMult:   1,
			})
		}
	}

	db.Save(&types.OperatorConfig{
		ID:        operator,
		PassTitle: "Demo Ferry Lines",
		EmailFrom: "bookings@ferryops.mv",
		EmailName: "Demo Ferry Lines",
	})

	log.Println("seeded operator", operator)
}

func addHalfHour(dep string) string {
	t, err := time.Parse("15:04", dep)
	if err != nil {
		return dep
	}
	return t.Add(30 * time.Minute).Format("15:04")
}
