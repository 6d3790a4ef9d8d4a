package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/justtaldevelops/blockbox/cube"
	"github.com/justtaldevelops/blockbox/world"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// main reads the selection from the configuration and prints the command plan for the mode passed on the
// command line.
func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	conf, err := readConfig()
	if err != nil {
		log.Fatal(err)
	}
	if len(os.Args) < 2 {
		log.Fatalf("usage: %v <fill|walls|edges|slice|chunks> [axis]", os.Args[0])
	}

	min, max := conf.Selection.Min, conf.Selection.Max
	box := cube.New(min[0], min[1], min[2], max[0], max[1], max[2])
	box = box.Expand(conf.Selection.Expand)
	box = box.ClampY(cube.Range{conf.Selection.DimensionRange[0], conf.Selection.DimensionRange[1]})
	if box.Volume() == 0 {
		log.Fatalf("selection %v is empty after expanding and clamping", box)
	}
	log.Printf("selection spans %v (%v blocks, centred on %v)", box, box.Volume(), box.Centre())

	switch os.Args[1] {
	case "fill":
		fmt.Println(fillCommand(box, conf.Output.Block))
	case "walls":
		n := 0
		box.ForEachWall(func(p cube.Pos) {
			fmt.Println(setBlockCommand(p, conf.Output.Block))
			n++
		})
		log.Printf("planned %v wall blocks", n)
	case "edges":
		n := 0
		box.ForEachEdge(func(p cube.Pos) {
			fmt.Println(setBlockCommand(p, conf.Output.Block))
			n++
		})
		log.Printf("planned %v edge blocks", n)
	case "slice":
		if len(os.Args) < 3 {
			log.Fatal("slice requires an axis (x, y or z)")
		}
		axis, err := parseAxis(os.Args[2])
		if err != nil {
			log.Fatal(err)
		}
		neg, pos := axisFaces(axis)
		n := 0
		box.Slice(axis, func(sub cube.Box) {
			start, err := sub.Endpoint(neg)
			if err != nil {
				log.Fatal(err)
			}
			end, err := sub.Endpoint(pos)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(fillCommand(cube.New(start.X(), start.Y(), start.Z(), end.X(), end.Y(), end.Z()), conf.Output.Block))
			n++
		})
		log.Printf("planned %v tubes along the %v axis", n, axis)
	case "chunks":
		n := 0
		world.ChunksInBox(box, func(pos world.ChunkPos) {
			fmt.Printf("chunk %v, %v\n", pos.X(), pos.Z())
			n++
		})
		log.Printf("selection touches %v chunks", n)
	default:
		log.Fatalf("unknown mode %q", os.Args[1])
	}
}

// setBlockCommand formats a /setblock command placing the configured block at the position passed.
func setBlockCommand(p cube.Pos, block string) string {
	return fmt.Sprintf("setblock %v %v %v %v", p.X(), p.Y(), p.Z(), block)
}

// fillCommand formats a /fill command spanning the box passed.
func fillCommand(b cube.Box, block string) string {
	min, max := b.Min(), b.Max()
	return fmt.Sprintf("fill %v %v %v %v %v %v %v", min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z(), block)
}

// parseAxis parses an axis name from the command line.
func parseAxis(s string) (cube.Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return cube.X, nil
	case "y":
		return cube.Y, nil
	case "z":
		return cube.Z, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// axisFaces returns the negative and positive face along the axis passed.
func axisFaces(a cube.Axis) (neg, pos cube.Face) {
	switch a {
	case cube.X:
		return cube.FaceWest, cube.FaceEast
	case cube.Y:
		return cube.FaceDown, cube.FaceUp
	}
	return cube.FaceNorth, cube.FaceSouth
}

type config struct {
	Selection struct {
		Min            [3]int
		Max            [3]int
		Expand         int
		DimensionRange [2]int
	}
	Output struct {
		Block string
	}
}

// readConfig reads the configuration from the config.toml file, or creates the file if it does not yet exist.
func readConfig() (config, error) {
	c := config{}
	c.Selection.Max = [3]int{15, 15, 15}
	c.Selection.DimensionRange = [2]int{-64, 319}
	c.Output.Block = "minecraft:stone"
	if _, err := os.Stat("config.toml"); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("failed encoding default config: %v", err)
		}
		if err := os.WriteFile("config.toml", data, 0644); err != nil {
			return c, fmt.Errorf("failed creating config: %v", err)
		}
		return c, nil
	}
	data, err := os.ReadFile("config.toml")
	if err != nil {
		return c, fmt.Errorf("error reading config: %v", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("error decoding config: %v", err)
	}
	return c, nil
}
