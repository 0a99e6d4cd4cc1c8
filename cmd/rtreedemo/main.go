// Command rtreedemo is a small interactive driver over an rtreedb.Tree,
// for exploring insert/search/delete/nearest behavior by hand. It is a
// demonstration tool, not part of the library's core.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/gopherspatial/rtreedb"
)

func main() {
	tree, err := rtreedb.New(4, rtreedb.Quadratic)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	printHelp()
	printPrompt()
	for scanner.Scan() {
		processInput(tree, scanner.Text())
		printPrompt()
	}
}

func printHelp() {
	fmt.Print(`
rtreedb demo

Available commands:
  ADD <minX> <minY> <maxX> <maxY> <label>   insert a rectangle
  DEL <minX> <minY> <maxX> <maxY> <label>   delete a matching rectangle
  SEARCH <minX> <minY> <maxX> <maxY>        list rectangles overlapping the window
  NEAREST <x> <y>                           find the closest rectangle to a point
  STATS                                     print tree shape
  EXIT                                      quit
`)
}

func printPrompt() {
	color.New(color.FgCyan).Print("rtreedb> ")
}

func processInput(tree *rtreedb.Tree, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	switch strings.ToUpper(fields[0]) {
	case "ADD":
		cmdAdd(tree, fields[1:])
	case "DEL":
		cmdDelete(tree, fields[1:])
	case "SEARCH":
		cmdSearch(tree, fields[1:])
	case "NEAREST":
		cmdNearest(tree, fields[1:])
	case "STATS":
		cmdStats(tree)
	case "EXIT":
		os.Exit(0)
	default:
		color.New(color.FgRed).Printf("unknown command %q\n", fields[0])
	}
}

func cmdAdd(tree *rtreedb.Tree, args []string) {
	box, label, err := parseBoxAndLabel(args)
	if err != nil {
		color.New(color.FgRed).Println(err)
		return
	}
	if err := tree.Insert(box, label); err != nil {
		color.New(color.FgRed).Println(err)
		return
	}
	color.New(color.FgGreen).Printf("inserted %s\n", label)
}

func cmdDelete(tree *rtreedb.Tree, args []string) {
	box, label, err := parseBoxAndLabel(args)
	if err != nil {
		color.New(color.FgRed).Println(err)
		return
	}
	if tree.Delete(box, label) {
		color.New(color.FgGreen).Printf("deleted %s\n", label)
	} else {
		color.New(color.FgYellow).Println("no matching entry")
	}
}

func cmdSearch(tree *rtreedb.Tree, args []string) {
	box, err := parseBox(args)
	if err != nil {
		color.New(color.FgRed).Println(err)
		return
	}
	for _, data := range tree.Search(box) {
		fmt.Println(data)
	}
}

func cmdNearest(tree *rtreedb.Tree, args []string) {
	if len(args) != 2 {
		color.New(color.FgRed).Println("usage: NEAREST <x> <y>")
		return
	}
	x, errX := strconv.ParseFloat(args[0], 64)
	y, errY := strconv.ParseFloat(args[1], 64)
	if errX != nil || errY != nil {
		color.New(color.FgRed).Println("usage: NEAREST <x> <y>")
		return
	}
	data, dist := tree.Nearest(x, y)
	if data == nil {
		color.New(color.FgYellow).Println("tree is empty")
		return
	}
	fmt.Printf("%v (distance %.4f)\n", data, dist)
}

func cmdStats(tree *rtreedb.Tree) {
	s := tree.Stats()
	fmt.Printf("nodes=%d leaves=%d height=%d avgFill=%.2f\n",
		s.NodeCount, s.LeafCount, s.Height, s.AverageNodeFill)
}

func parseBox(args []string) (rtreedb.Box, error) {
	if len(args) < 4 {
		return rtreedb.Box{}, fmt.Errorf("usage: <minX> <minY> <maxX> <maxY>")
	}
	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return rtreedb.Box{}, fmt.Errorf("invalid coordinate %q", args[i])
		}
		vals[i] = v
	}
	return rtreedb.Box{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]}, nil
}

func parseBoxAndLabel(args []string) (rtreedb.Box, string, error) {
	if len(args) < 5 {
		return rtreedb.Box{}, "", fmt.Errorf("usage: <minX> <minY> <maxX> <maxY> <label>")
	}
	box, err := parseBox(args[:4])
	if err != nil {
		return rtreedb.Box{}, "", err
	}
	return box, strings.Join(args[4:], " "), nil
}
