package catalog

import (
	"testing"

	"katwate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleRoomsByView(t *testing.T) {
	svc := NewCatalogService()

	day := svc.VisibleRooms(models.PackageDay, false)
	require.Len(t, day, 1)
	assert.Equal(t, "day-pass", day[0].ID)

	var night []string
	for _, r := range svc.VisibleRooms(models.PackageNight, true) {
		night = append(night, r.ID)
	}
	assert.Equal(t, []string{"standard-room", "couple-package", "deluxe-room"}, night)
}

func TestTariffCards(t *testing.T) {
	svc := NewCatalogService()

	cards := svc.Tariffs(models.PackageDay, true)
	require.Len(t, cards, 1)
	assert.Equal(t, "₹950", cards[0].CurrentPrice)
	require.NotNil(t, cards[0].MinPersons)
	assert.Equal(t, 6, *cards[0].MinPersons)
	assert.Equal(t, "day-pass", cards[0].BookingRoomTypeRef)

	cards = svc.Tariffs(models.PackageNight, false)
	var couple models.TariffCard
	for _, c := range cards {
		if c.Room.ID == "couple-package" {
			couple = c
		}
	}
	assert.Equal(t, "₹5000", couple.CurrentPrice)
	assert.True(t, couple.HasExtraCharges)
	require.NotNil(t, couple.ExtraPerson)
	assert.Equal(t, "₹1600", *couple.ExtraPerson)
	assert.Nil(t, couple.MinPersons)
}

func TestCurrentPrice(t *testing.T) {
	svc := NewCatalogService()

	event, ok := svc.RoomByID("corporate-event")
	require.True(t, ok)
	assert.Equal(t, "Contact for Pricing", CurrentPrice(event, models.PackageDay, false))

	std, _ := svc.RoomByID("standard-room")
	assert.Equal(t, "N/A", CurrentPrice(std, models.PackageDay, false))
	assert.Equal(t, "₹2200", CurrentPrice(std, models.PackageNight, true))
}

func TestResolveRoomType(t *testing.T) {
	svc := NewCatalogService()

	rt, ok := svc.ResolveRoomType("standard")
	require.True(t, ok)
	assert.Equal(t, "standard-room", rt.RoomID)

	rt, ok = svc.ResolveRoomType("couple-package")
	require.True(t, ok)
	assert.Equal(t, "Couple Package", rt.Label)

	_, ok = svc.ResolveRoomType("penthouse")
	assert.False(t, ok)

	assert.Len(t, svc.RoomTypesFor(models.PackageNight), 3)
	assert.Len(t, svc.RoomTypesFor(models.PackageDay), 1)
}

func TestCapacityParsing(t *testing.T) {
	assert.Equal(t, 5, ParseCapacity("5 Adults"))
	assert.Equal(t, 6, ParseCapacity("Per Person (Min. 6-10 Persons)"))
	assert.Equal(t, 0, ParseCapacity("Custom (Contact for details)"))

	assert.Equal(t, 10, ParseMinPersons("Per Person (Min. 10 Persons)"))
	assert.Equal(t, 0, ParseMinPersons("5 Adults"))
}

func TestMinMaxAdults(t *testing.T) {
	svc := NewCatalogService()

	dayPass, _ := svc.RoomByID("day-pass")
	assert.Equal(t, 6, MinAdults(dayPass, true))
	assert.Equal(t, 10, MinAdults(dayPass, false))
	assert.Equal(t, DefaultMaxAdults, MaxAdults(dayPass))

	std, _ := svc.RoomByID("standard-room")
	assert.Equal(t, 5, MinAdults(std, false))
	assert.Equal(t, 5, MaxAdults(std))

	couple, _ := svc.RoomByID("couple-package")
	assert.Equal(t, 2, MinAdults(couple, true))
	assert.Equal(t, DefaultMaxAdults, MaxAdults(couple))

	event, _ := svc.RoomByID("corporate-event")
	assert.Equal(t, 0, MinAdults(event, false))
}
