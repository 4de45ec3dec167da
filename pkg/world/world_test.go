package world_test

import (
	"testing"

	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/arthur-debert/autopickup/pkg/world"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_WeightAndVolume(t *testing.T) {
	arrow := world.NewItem("wooden arrow", 30, 50, nil)
	quiver := world.NewContainer("quiver", 200, 1000, true).Put(arrow, world.NewItem("wooden arrow", 30, 50, nil))
	bag := world.NewContainer("plastic bag", 5, 10, false).Put(world.NewItem("rag", 80, 250, nil))

	assert.Equal(t, types.Mass(260), quiver.Weight())
	assert.Equal(t, types.Volume(1000), quiver.Volume(), "rigid volume ignores contents")
	assert.Equal(t, types.Mass(85), bag.Weight())
	assert.Equal(t, types.Volume(260), bag.Volume(), "soft volume grows with contents")
}

func TestItem_RemoveItem(t *testing.T) {
	a := world.NewItem("a", 1, 1, nil)
	b := world.NewItem("b", 1, 1, nil)
	box := world.NewContainer("box", 1, 1, true).Put(a, b)

	contents := box.Contents()
	require.Len(t, contents, 2)

	assert.Same(t, a, box.RemoveItem(a))
	assert.Nil(t, box.RemoveItem(a), "already removed")
	assert.Len(t, box.Items, 1)
	assert.Len(t, contents, 2, "snapshot is unaffected")
	assert.False(t, box.IsContainerEmpty())
}

func TestItem_Predicates(t *testing.T) {
	sealedCan := &world.Item{Label: "can", Container: true, Rigid: true, Sealed: true}
	assert.True(t, sealedCan.AnyPocketsSealed())
	assert.True(t, sealedCan.AllPocketsRigid())
	assert.True(t, sealedCan.IsContainerEmpty())

	loose := &world.Item{Label: "rock", Rigid: true, Sealed: true}
	assert.False(t, loose.AnyPocketsSealed(), "non-containers have no pockets")
	assert.False(t, loose.AllPocketsRigid())

	card := &world.Item{Label: "id card", Flags: []types.Flag{types.FlagNoDrop}}
	assert.True(t, card.HasFlag(types.FlagNoDrop))
	assert.False(t, card.HasFlag(types.FlagWeightIgnored))
}

func TestDefaultCatalog(t *testing.T) {
	c := world.DefaultCatalog()
	require.Greater(t, c.Len(), 10)

	arrow, ok := c.Lookup("arrow_wood")
	require.True(t, ok)
	assert.Equal(t, "wooden arrow", arrow.Name())
	assert.Equal(t, types.Materials{"Wood": 1}, arrow.Materials())

	flashlight, ok := c.Lookup("flashlight")
	require.True(t, ok)
	inst := flashlight.New()
	assert.Equal(t, 100, inst.BatteryCapacity())
	assert.True(t, inst.IsContainer())
}

func TestCatalog_Find(t *testing.T) {
	c := world.DefaultCatalog()

	byID, ok := c.Find("arrow_steel")
	require.True(t, ok)
	byName, ok := c.Find("Steel Arrow")
	require.True(t, ok)
	assert.Same(t, byID, byName)

	_, ok = c.Find("laser rifle")
	assert.False(t, ok)
}

func TestParseCatalog(t *testing.T) {
	t.Run("later definitions replace earlier ones", func(t *testing.T) {
		c, err := world.ParseCatalog([]byte(`
items:
  - id: a
    name: first
  - id: b
    name: second
  - id: a
    name: replaced
`))
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())
		assert.Equal(t, "replaced", c.All()[0].Name())
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := world.ParseCatalog([]byte("items:\n  - id: a\n"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogLoad))
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := world.ParseCatalog([]byte("items: [oops"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogLoad))
	})
}

func TestLoadScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/scenarios/camp.yaml", []byte(`
catalog:
  - id: pebble
    name: shiny pebble
    materials: {Stone: 1}
    weight: 10
tiles:
  - at: {x: 1, y: 2, z: 0}
    items:
      - type: pebble
      - type: backpack
        contents:
          - type: arrow_wood
          - name: strange note
            weight: 1
`), 0644))

	s, err := world.LoadScenario(fs, "/scenarios/camp.yaml")
	require.NoError(t, err)

	catalog := world.DefaultCatalog()
	m, err := s.Build(catalog)
	require.NoError(t, err)

	_, ok := catalog.Lookup("pebble")
	assert.True(t, ok, "scenario types are added to the catalog")

	stack := m.Stack(types.Point{X: 1, Y: 2})
	require.Len(t, stack, 2)
	assert.Equal(t, "shiny pebble", stack[0].Name())
	assert.Equal(t, "backpack", stack[1].Name())

	contents := stack[1].Contents()
	require.Len(t, contents, 2)
	assert.Equal(t, "wooden arrow", contents[0].Name())
	assert.Equal(t, types.Materials{"Wood": 1}, contents[0].Materials())
	assert.Equal(t, "strange note", contents[1].Name())
}

func TestLoadScenario_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := world.LoadScenario(fs, "/missing.yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrScenarioLoad))

	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte(`
tiles:
  - at: {x: 0, y: 0, z: 0}
    items:
      - type: no_such_type
`), 0644))
	s, err := world.LoadScenario(fs, "/bad.yaml")
	require.NoError(t, err)
	_, err = s.Build(world.NewCatalog())
	assert.True(t, errors.IsErrorCode(err, errors.ErrScenarioLoad))
}

func TestMap_Take(t *testing.T) {
	here := types.Point{X: 3}
	arrow := world.NewItem("wooden arrow", 30, 50, nil)
	quiver := world.NewContainer("quiver", 200, 1000, true).Put(arrow)
	rock := world.NewItem("rock", 500, 200, nil)

	m := world.NewMap()
	m.AddItem(here, quiver)
	m.AddItem(here, rock)

	taken, ok := m.Take(types.Inside(types.OnTile(here, quiver), arrow))
	require.True(t, ok)
	assert.Same(t, arrow, taken)
	assert.True(t, quiver.IsContainerEmpty())

	taken, ok = m.Take(types.OnTile(here, rock))
	require.True(t, ok)
	assert.Same(t, rock, taken)
	assert.Len(t, m.Stack(here), 1)

	_, ok = m.Take(types.OnTile(here, rock))
	assert.False(t, ok)
}

func TestMap_TilesOrdered(t *testing.T) {
	m := world.NewMap()
	points := []types.Point{{X: 5, Y: 1}, {X: 0, Y: 0, Z: 1}, {X: 2, Y: 1}, {X: 9, Y: 0}}
	for _, p := range points {
		m.AddItem(p, world.NewItem("rock", 500, 200, nil))
	}
	m.AddItem(types.Point{X: 7, Y: 7}, nil)

	want := []types.Point{{X: 9, Y: 0}, {X: 2, Y: 1}, {X: 5, Y: 1}, {X: 0, Y: 0, Z: 1}}
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, m.Tiles())
	}
}
