package world

import (
	"fmt"
	"multiagent/game"
	"sort"
	"strings"
)

// Layout characters.
const (
	wallCell      = '%'
	objectiveCell = '.'
	capsuleCell   = 'o'
	agentCell     = 'P'
	ghostCell     = 'G'
	emptyCell     = ' '
)

// ParseLayout builds the initial State of a maze drawn as text, one row per
// line. Rows shorter than the widest one are padded with walls. Adversaries
// are numbered in reading order.
func ParseLayout(text string) (*State, error) {
	rows := strings.Split(strings.Trim(text, "\n"), "\n")
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	height := len(rows)
	if width == 0 {
		return nil, fmt.Errorf("empty layout")
	}

	s := &State{
		walls:    game.NewGrid(width, height),
		food:     game.NewGrid(width, height),
		capsules: []game.Position{},
	}
	var pacman *game.Position
	ghosts := []game.Position{}

	for y, row := range rows {
		for x := 0; x < width; x++ {
			cell := byte(wallCell)
			if x < len(row) {
				cell = row[x]
			}
			pos := game.Position{X: x, Y: y}
			switch cell {
			case wallCell:
				s.walls[x][y] = true
			case objectiveCell:
				s.food[x][y] = true
			case capsuleCell:
				s.capsules = append(s.capsules, pos)
			case agentCell:
				if pacman != nil {
					return nil, fmt.Errorf("layout has more than one agent 0 at %v and %v", *pacman, pos)
				}
				pacman = &pos
			case ghostCell:
				ghosts = append(ghosts, pos)
			case emptyCell:
			default:
				return nil, fmt.Errorf("unknown layout character %q at %v", cell, pos)
			}
		}
	}
	if pacman == nil {
		return nil, fmt.Errorf("layout has no agent 0")
	}

	s.agents = append(s.agents, agentState{Pos: *pacman, Start: *pacman})
	for _, ghost := range ghosts {
		s.agents = append(s.agents, agentState{Pos: ghost, Start: ghost})
	}
	return s, nil
}

// Layouts are the built-in mazes by name.
var Layouts = map[string]string{
	"test": `
%%%%%
% . %
%.G.%
% . %
%. .%
%   %
%  .%
%   %
%P .%
%%%%%`,
	"corridor": `
%%%%%%%%
%P   G %
%%%%%%.%
%%%%%%%%`,
	"small": `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%`,
	"open": `
%%%%%%%%%%
%P   .  G%
% .    . %
%   o    %
% .    . %
%G      .%
%%%%%%%%%%`,
}

// LayoutNames lists the built-in layouts in alphabetical order.
func LayoutNames() []string {
	names := make([]string, 0, len(Layouts))
	for name := range Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load parses a built-in layout.
func Load(name string) (*State, error) {
	text, ok := Layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (known: %s)", name, strings.Join(LayoutNames(), ", "))
	}
	return ParseLayout(text)
}
