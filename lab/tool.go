package lab

import (
	"fmt"
	"strings"
)

// Tool is a grid editing brush.
type Tool int

const (
	// ToolWall turns a cell into a wall.
	ToolWall Tool = iota
	// ToolErase turns a cell back into normal terrain.
	ToolErase
	// ToolMud paints cost-3 terrain on an open cell.
	ToolMud
	// ToolWater paints cost-5 terrain on an open cell.
	ToolWater
	// ToolStart moves the start marker.
	ToolStart
	// ToolEnd moves the end marker.
	ToolEnd
)

var toolNames = [...]string{"wall", "erase", "mud", "water", "start", "end"}

// String returns the lower-case tool name.
func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool maps a name to a Tool, ignoring case.
func ParseTool(name string) (Tool, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range toolNames {
		if s == n {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}
