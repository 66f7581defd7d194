package main

import (
	"fmt"
	"path"
)

const (
	mainGroupMarker    = "/* AntAttack3D */ = {"
	sourcesPhaseMarker = "/* Sources */ = {"

	groupSectionMarker     = "/* Begin PBXGroup section */"
	fileRefSectionMarker   = "/* Begin PBXFileReference section */"
	buildFileSectionMarker = "/* Begin PBXBuildFile section */"
)

const defaultGroupName = "Input"

var defaultFilesToAdd = []string{
	"AntAttack3D/Input/InputProvider.swift",
	"AntAttack3D/Input/InputManager.swift",
}

// addFilesToProject registers Swift sources in the Xcode manifest under a new
// group: a group entry under the main group, a PBXGroup, one PBXFileReference
// and PBXBuildFile per file, and the build-file IDs in the Sources phase.
func addFilesToProject(projectPath string, files []string, groupName string) error {
	fmt.Printf("Reading project file: %s\n", projectPath)
	project, err := openPbxProject(projectPath)
	if err != nil {
		return err
	}

	groupID := newObjectID()
	fileRefs := make(map[string]string, len(files))
	buildFiles := make(map[string]string, len(files))
	for _, file := range files {
		fileRefs[file] = newObjectID()
		buildFiles[file] = newObjectID()
	}

	fmt.Println("\nGenerated IDs:")
	fmt.Printf("   Group: %s\n", groupID)
	for _, file := range files {
		fmt.Printf("   %s: %s (ref), %s (build)\n", path.Base(file), fileRefs[file], buildFiles[file])
	}

	groupRef := fmt.Sprintf("\t\t\t\t%s /* %s */,\n", groupID, groupName)
	if err := project.insertIntoList(mainGroupMarker, "children = (", groupRef); err != nil {
		return err
	}

	var children string
	for _, file := range files {
		children += fmt.Sprintf("\t\t\t\t%s /* %s */,\n", fileRefs[file], path.Base(file))
	}
	group := fmt.Sprintf("\t\t%s /* %s */ = {\n\t\t\tisa = PBXGroup;\n\t\t\tchildren = (\n%s\t\t\t);\n\t\t\tpath = %s;\n\t\t\tsourceTree = \"<group>\";\n\t\t};\n",
		groupID, groupName, children, groupName)
	if err := project.insertAfterLine(groupSectionMarker, group); err != nil {
		return err
	}

	var refEntries string
	for _, file := range files {
		name := path.Base(file)
		refEntries += fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = %s; sourceTree = \"<group>\"; };\n",
			fileRefs[file], name, name)
	}
	if err := project.insertAfterLine(fileRefSectionMarker, refEntries); err != nil {
		return err
	}

	var buildEntries string
	for _, file := range files {
		name := path.Base(file)
		buildEntries += fmt.Sprintf("\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n",
			buildFiles[file], name, fileRefs[file], name)
	}
	if err := project.insertAfterLine(buildFileSectionMarker, buildEntries); err != nil {
		return err
	}

	var sourceEntries string
	for _, file := range files {
		sourceEntries += fmt.Sprintf("\t\t\t\t%s /* %s in Sources */,\n", buildFiles[file], path.Base(file))
	}
	if err := project.insertIntoList(sourcesPhaseMarker, "files = (", sourceEntries); err != nil {
		return err
	}

	if err := project.save(); err != nil {
		return err
	}
	fmt.Printf("\nAdded %d files to %s group. Open Xcode to verify.\n", len(files), groupName)
	return nil
}
