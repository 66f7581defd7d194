package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

const defaultProjectFile = "AntAttack3D.xcodeproj/project.pbxproj"

var ErrMarkerNotFound = errors.New("pbxproj: marker not found")

// pbxProject is an Xcode project manifest loaded as one string. The patchers
// work by marker search and text splicing; they never parse the plist
// structure, which is all the maintenance scripts need.
type pbxProject struct {
	path    string
	content string
}

func openPbxProject(path string) (*pbxProject, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &pbxProject{path: path, content: string(raw)}, nil
}

func (p *pbxProject) save() error {
	return os.WriteFile(p.path, []byte(p.content), 0644)
}

// insertAfterLine splices text in directly after the line containing marker.
func (p *pbxProject) insertAfterLine(marker, text string) error {
	idx := strings.Index(p.content, marker)
	if idx == -1 {
		return fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}
	lineEnd := strings.Index(p.content[idx:], "\n")
	if lineEnd == -1 {
		return fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}
	at := idx + lineEnd + 1
	p.content = p.content[:at] + text + p.content[at:]
	return nil
}

// insertIntoList splices text in just before the ");" that closes the list
// opened by listMarker, searching from the first occurrence of sectionMarker.
func (p *pbxProject) insertIntoList(sectionMarker, listMarker, text string) error {
	sectionIdx := strings.Index(p.content, sectionMarker)
	if sectionIdx == -1 {
		return fmt.Errorf("%w: %q", ErrMarkerNotFound, sectionMarker)
	}
	listIdx := strings.Index(p.content[sectionIdx:], listMarker)
	if listIdx == -1 {
		return fmt.Errorf("%w: %q after %q", ErrMarkerNotFound, listMarker, sectionMarker)
	}
	closeIdx := strings.Index(p.content[sectionIdx+listIdx:], ");")
	if closeIdx == -1 {
		return fmt.Errorf("%w: unterminated list %q", ErrMarkerNotFound, listMarker)
	}
	at := sectionIdx + listIdx + closeIdx
	p.content = p.content[:at] + text + p.content[at:]
	return nil
}

// newObjectID returns a fresh 24-digit uppercase hex identifier in the style
// Xcode uses for pbxproj objects.
func newObjectID() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:12]))
}
