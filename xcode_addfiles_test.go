package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectFixture = `// !$*UTF8*$!
{
	objects = {
/* Begin PBXBuildFile section */
		F0000000000000000000A001 /* AppDelegate3D.swift in Sources */ = {isa = PBXBuildFile; fileRef = F0000000000000000000B001 /* AppDelegate3D.swift */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		F0000000000000000000B001 /* AppDelegate3D.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = AppDelegate3D.swift; sourceTree = "<group>"; };
		F0000000000000000000B002 /* CityMap3D.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = CityMap3D.swift; sourceTree = "<group>"; };
		F0000000000000000000B003 /* Shared.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = Shared.swift; sourceTree = "<group>"; };
/* End PBXFileReference section */

/* Begin PBXGroup section */
		F0000000000000000000C001 /* AntAttack3D */ = {
			isa = PBXGroup;
			children = (
				F0000000000000000000B001 /* AppDelegate3D.swift */,
				F0000000000000000000B002 /* CityMap3D.swift */,
			);
			path = AntAttack3D;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXSourcesBuildPhase section */
		F0000000000000000000D001 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			files = (
				F0000000000000000000A001 /* AppDelegate3D.swift in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXSourcesBuildPhase section */
	};
}
`

func writeTempProject(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.pbxproj")
	require.NoError(t, os.WriteFile(path, []byte(projectFixture), 0644))
	return path
}

func readProject(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func TestAddFilesToProject(t *testing.T) {
	path := writeTempProject(t)
	files := []string{
		"AntAttack3D/Input/InputProvider.swift",
		"AntAttack3D/Input/InputManager.swift",
	}

	require.NoError(t, addFilesToProject(path, files, "Input"))
	content := readProject(t, path)

	// Group spliced in with its files as children.
	assert.Contains(t, content, `/* Input */ = {`)
	assert.Contains(t, content, "path = Input;")
	assert.Contains(t, content, "InputProvider.swift */,")
	assert.Contains(t, content, "InputManager.swift */,")

	// One file reference and one build file per source.
	assert.Regexp(t, regexp.MustCompile(`[0-9A-F]{24} /\* InputProvider\.swift \*/ = \{isa = PBXFileReference;.*path = InputProvider\.swift;`), content)
	assert.Regexp(t, regexp.MustCompile(`[0-9A-F]{24} /\* InputManager\.swift in Sources \*/ = \{isa = PBXBuildFile; fileRef = [0-9A-F]{24}`), content)

	// Group ID registered under the main group's children.
	groupID := regexp.MustCompile(`([0-9A-F]{24}) /\* Input \*/ = \{`).FindStringSubmatch(content)
	require.Len(t, groupID, 2)
	assert.Contains(t, content, groupID[1]+" /* Input */,")

	// Build phase now compiles both new files.
	assert.Contains(t, content, "InputProvider.swift in Sources */,")
	assert.Contains(t, content, "InputManager.swift in Sources */,")

	// Existing entries survive untouched.
	assert.Contains(t, content, "F0000000000000000000B002 /* CityMap3D.swift */,")
}

func TestAddFilesToProjectGeneratesFreshIDs(t *testing.T) {
	path := writeTempProject(t)
	require.NoError(t, addFilesToProject(path, []string{"AntAttack3D/Input/InputProvider.swift"}, "Input"))

	content := readProject(t, path)
	ids := regexp.MustCompile(`[0-9A-F]{24}`).FindAllString(content, -1)
	refID := regexp.MustCompile(`([0-9A-F]{24}) /\* InputProvider\.swift \*/ = \{isa = PBXFileReference`).FindStringSubmatch(content)
	require.Len(t, refID, 2)
	assert.NotEqual(t, "F0000000000000000000B001", refID[1])
	assert.Contains(t, ids, refID[1])
}

func TestAddFilesToProjectMissingMainGroup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.pbxproj")
	broken := strings.Replace(projectFixture, "/* AntAttack3D */ = {", "/* SomethingElse */ = {", 1)
	require.NoError(t, os.WriteFile(path, []byte(broken), 0644))

	err := addFilesToProject(path, defaultFilesToAdd, "Input")
	assert.ErrorIs(t, err, ErrMarkerNotFound)
	assert.Equal(t, broken, readProject(t, path))
}

func TestAddFilesToProjectMissingFile(t *testing.T) {
	err := addFilesToProject(filepath.Join(t.TempDir(), "nope.pbxproj"), defaultFilesToAdd, "Input")
	assert.Error(t, err)
}
