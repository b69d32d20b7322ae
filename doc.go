/*
Package menulayout arranges game menu elements into groups anchored to the
screen or to other groups.

# Overview

Elements are flat rectangles kept in a Registry. Groups, kept in a Store,
collect elements and describe how they are arranged: the stacking direction,
the gap between members and an alignment rule. A group is anchored either to
the screen or to a parent group, so menus can be built from a few centered
groups and several groups hanging off them.

An Engine turns the descriptors into element rectangles. Every call to
Arrange starts from scratch:

 1. Auto-sized elements are measured from their text.
 2. Each group's footprint is aggregated from its members.
 3. Groups are resolved parents first and their members are stacked inside.

Arrange is deterministic. Calling it twice with unchanged inputs yields the
same rectangles, and the order groups were registered in does not matter.

# Quick Start

	cfg, err := menulayout.LoadConfigFile("mainmenu.toml")
	if err != nil {
	    return err
	}
	measurer, err := xfont.Default()
	if err != nil {
	    return err
	}
	engine, err := menulayout.NewFromConfig(cfg, menulayout.WithTextMeasurer(measurer))
	if err != nil {
	    return err
	}

	// On startup and on every window resize:
	engine.SetScreenSize(float32(width), float32(height))
	if err := engine.Arrange(); err != nil {
	    log.Println("layout problems:", err)
	}

# Alignments

Inner alignments place a group inside its container, which is the screen or
the parent group's rectangle:

	CENTER         TOP_LEFT       TOP_CENTER     TOP_RIGHT
	CENTER_LEFT    CENTER_RIGHT
	BOTTOM_LEFT    BOTTOM_CENTER  BOTTOM_RIGHT

Outer alignments place a group next to its parent and require one:

	ALIGN_ABOVE_PARENT     centered above, PaddingToParent above the parent
	ALIGN_BELOW_PARENT     centered below
	ALIGN_LEFT_TO_PARENT   vertically centered on the left
	ALIGN_RIGHT_TO_PARENT  vertically centered on the right

AlignmentOffset shifts a group by a fraction of its container. Groups on the
left or right side (CENTER_LEFT, CENTER_RIGHT and the left and right outer
alignments) slide vertically; all others slide horizontally.

On the cross axis of the layout, members follow the edge the alignment names.
A vertical group aligned TOP_RIGHT right-aligns its members; a horizontal
group aligned BOTTOM_CENTER bottom-aligns them.

# Layout Files

Layouts are TOML files:

	[screen]
	width = 1280
	height = 720

	[[group]]
	id = "mainMenu"
	alignment = "CENTER"
	layout_type = "VERTICAL"
	padding = 12

	  [[group.element]]
	  id = "newGame"
	  text = "New Game"

	[[group]]
	id = "title"
	alignment = "ALIGN_ABOVE_PARENT"
	parent = "mainMenu"
	padding_to_parent = 40
	members = ["logo"]

	[[element]]
	id = "logo"
	width = 400
	height = 96

An element with text and without width and height is sized from its text at
the element's font_size, or the group's, or DefaultFontSize.

# Errors

Loading rejects unknown keys, unknown alignment and layout type names,
duplicate IDs, elements listed in two groups and outer alignments without a
parent. Those are returned by LoadConfig and Config.Build.

Problems in the group graph do not stop a pass. A missing member is skipped,
a missing parent or a parent cycle makes the affected groups align to the
screen instead. Each problem is logged as a warning and returned from
Arrange as a *ConfigError joined with the others:

	if err := engine.Arrange(); errors.Is(err, menulayout.ErrParentCycle) {
	    // at least one group was placed against the screen
	}

# Logging

Configuration problems are logged at Warn through log/slog. SetVerbose(true)
adds a Debug record for every resolved group. WithLogger routes an engine's
records to a different logger.

# Backends

The core package has no graphics dependencies.

	backend/xfont    TextMeasurer over an OpenType font (Go Regular by default)
	backend/opengl   renders the debug overlay and re-arranges on window resize
	cmd/layoutdump   arranges a layout file headlessly and prints the result
*/
package menulayout
