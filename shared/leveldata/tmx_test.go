package leveldata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="23" tilewidth="32" tileheight="32" infinite="0" nextlayerid="6" nextobjectid="10">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="100" y="500"/>
 </objectgroup>
 <objectgroup id="2" name="Platforms">
  <object id="3" x="300" y="450" width="200" height="20">
   <properties>
    <property name="hasMonster" type="bool" value="true"/>
   </properties>
  </object>
  <object id="2" x="0" y="680" width="1280" height="20"/>
 </objectgroup>
 <objectgroup id="3" name="Door">
  <object id="4" x="1150" y="590">
   <properties>
    <property name="locked" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Key">
  <object id="5" x="900" y="300"/>
 </objectgroup>
 <objectgroup id="5" name="Ghosts">
  <object id="6" x="800" y="200">
   <properties>
    <property name="radius" type="float" value="120"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadTMX(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tower.tmx", sampleTMX)

	lvl, err := LoadTMX(os.DirFS(dir), "tower.tmx")
	require.NoError(t, err)

	assert.Equal(t, "tower", lvl.Name)
	assert.Equal(t, Point{100, 500}, lvl.PlayerSpawn)
	require.Len(t, lvl.Platforms, 2)
	assert.Equal(t, PlatformSpec{X: 300, Y: 450, Length: 200, HasMonster: true}, lvl.Platforms[0])
	assert.Equal(t, PlatformSpec{X: 0, Y: 680, Length: 1280}, lvl.Platforms[1])
	assert.Equal(t, &DoorSpec{X: 1150, Y: 590, Locked: true}, lvl.Door)
	assert.Equal(t, &Point{900, 300}, lvl.Key)
	assert.Equal(t, []GhostSpec{{X: 800, Y: 200, Radius: 120}}, lvl.Ghosts)
}

func TestLoadAllSortsAndMixesFormats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "02-tower.tmx", sampleTMX)
	writeFile(t, dir, "01-intro.txt", "PlayerSpawn: 1,2\n")
	writeFile(t, dir, "notes.md", "not a level")

	levels, err := LoadAll(os.DirFS(dir), ".", testWindow)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "01-intro", levels[0].Name)
	assert.Equal(t, "02-tower", levels[1].Name)
}

func TestLoadAllReportsBrokenLevel(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", "Platform: 0,0,10,0,0\n")

	_, err := LoadAll(os.DirFS(dir), ".", testWindow)
	assert.True(t, errors.Is(err, ErrNoPlayerSpawn))

	_, err = List(os.DirFS(t.TempDir()), ".")
	assert.Error(t, err)
}
