package leveldata

import (
	"fmt"
	"io/fs"
	"slices"
	"sort"

	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file into walls and spawn points. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
//
// Walls come from three sources: polylines and polygons in the Walls object
// group, plain rectangle objects in the same group, and the exposed edges of
// the solid tile layer. Closed shapes are wound clockwise on screen so every
// wall normal faces out of the solid. Objects with a true "inside" property
// are enclosures and are wound the other way, so their normals face in.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		grid := make([][]bool, levelMap.Height)
		for y := range grid {
			grid[y] = make([]bool, levelMap.Width)
			for x := range grid[y] {
				grid[y][x] = !layer.Tiles[y*levelMap.Width+x].IsNil()
			}
		}
		data.Walls = append(data.Walls, TileWalls(grid, float64(levelMap.TileWidth), float64(levelMap.TileHeight))...)
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallsGroup:
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, objectWalls(o)...)
			}
		case SpawnsGroup:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, SpawnPoint{Name: o.Name, X: o.X, Y: o.Y})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].X < data.Spawns[j].X
	})

	return data, nil
}

func objectWalls(o *tiled.Object) []*gamemath.Wall {
	name := o.Name
	if name == "" {
		name = fmt.Sprintf("object %d", o.ID)
	}

	inside := o.Properties.GetBool(InsideProperty)

	var walls []*gamemath.Wall
	for _, line := range o.PolyLines {
		walls = append(walls, chain(name, o.X, o.Y, line.Points, false, inside)...)
	}
	for _, poly := range o.Polygons {
		walls = append(walls, chain(name, o.X, o.Y, poly.Points, true, inside)...)
	}

	if len(o.PolyLines) == 0 && len(o.Polygons) == 0 && o.Width > 0 && o.Height > 0 {
		r := gamemath.NewRect(o.X, o.Y, o.Width, o.Height)
		if inside {
			walls = append(walls, EnclosureWalls(name, r)...)
		} else {
			walls = append(walls, RectWalls(name, r)...)
		}
	}
	return walls
}

func chain(name string, ox, oy float64, points *tiled.Points, closed, inside bool) []*gamemath.Wall {
	if points == nil || len(*points) < 2 {
		return nil
	}

	pts := make([]gamemath.Point, 0, len(*points)+1)
	for _, p := range *points {
		pts = append(pts, gamemath.Point{X: ox + p.X, Y: oy + p.Y})
	}
	if closed {
		if clockwise := signedArea(pts) > 0; clockwise == inside {
			slices.Reverse(pts)
		}
		pts = append(pts, pts[0])
	}

	walls := make([]*gamemath.Wall, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		walls = append(walls, gamemath.NewWall(fmt.Sprintf("%s %d", name, i-1), pts[i-1], pts[i]))
	}
	return walls
}

// RectWalls returns r's four edges wound clockwise on screen: top, right,
// bottom, left.
func RectWalls(name string, r gamemath.Rect) []*gamemath.Wall {
	return []*gamemath.Wall{
		gamemath.NewWall(name+" top", r.TopLeft(), r.TopRight()),
		gamemath.NewWall(name+" right", r.TopRight(), r.BottomRight()),
		gamemath.NewWall(name+" bottom", r.BottomRight(), r.BottomLeft()),
		gamemath.NewWall(name+" left", r.BottomLeft(), r.TopLeft()),
	}
}

// EnclosureWalls returns r's four edges wound counter-clockwise on screen,
// with normals facing into r.
func EnclosureWalls(name string, r gamemath.Rect) []*gamemath.Wall {
	return []*gamemath.Wall{
		gamemath.NewWall(name+" top", r.TopRight(), r.TopLeft()),
		gamemath.NewWall(name+" left", r.TopLeft(), r.BottomLeft()),
		gamemath.NewWall(name+" bottom", r.BottomLeft(), r.BottomRight()),
		gamemath.NewWall(name+" right", r.BottomRight(), r.TopRight()),
	}
}

// signedArea is twice the shoelace area of the closed ring pts. It is
// positive when the ring runs clockwise on screen.
func signedArea(pts []gamemath.Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// TileWalls returns one wall per exposed tile edge of grid, indexed
// [row][column]. Edges shared by two solid tiles are skipped.
func TileWalls(grid [][]bool, tileW, tileH float64) []*gamemath.Wall {
	solid := func(x, y int) bool {
		return y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) && grid[y][x]
	}

	var walls []*gamemath.Wall
	for y, row := range grid {
		for x, filled := range row {
			if !filled {
				continue
			}
			r := gamemath.NewRect(float64(x)*tileW, float64(y)*tileH, tileW, tileH)
			edges := RectWalls(fmt.Sprintf("tile %d,%d", x, y), r)

			exposed := [4]bool{!solid(x, y-1), !solid(x+1, y), !solid(x, y+1), !solid(x-1, y)}
			for i, e := range edges {
				if exposed[i] {
					walls = append(walls, e)
				}
			}
		}
	}
	return walls
}
