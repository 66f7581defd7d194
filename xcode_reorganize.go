package main

import (
	"fmt"
	"regexp"
)

// folderMoves maps each moved source file to the folder it now lives in.
// Order matters only for the report.
var folderMoves = []struct {
	file   string
	folder string
}{
	{"AppDelegate3D.swift", "App"},
	{"MainNavigationController.swift", "App"},
	{"TitleScene3D.swift", "Scenes"},
	{"GameScene3D.swift", "Scenes"},
	{"AboutScene3D.swift", "Scenes"},
	{"LeaderboardScene3D.swift", "Scenes"},
	{"GameViewController3D.swift", "ViewControllers"},
	{"EnemyBall.swift", "Entities"},
	{"Hostage.swift", "Entities"},
	{"CityMap3D.swift", "World"},
	{"ConfigManager.swift", "Services"},
	{"GameCenterManager.swift", "Services"},
}

// reorganizeProject rewrites the path attribute of each moved file's
// PBXFileReference so the manifest matches the on-disk folder layout. File
// references that are absent or already updated are reported and left alone.
func reorganizeProject(projectPath string) error {
	fmt.Printf("Reading project file: %s\n", projectPath)
	project, err := openPbxProject(projectPath)
	if err != nil {
		return err
	}

	fmt.Println("\nUpdating file paths in project...")
	for _, move := range folderMoves {
		pattern := regexp.MustCompile(
			`(/\* ` + regexp.QuoteMeta(move.file) + ` \*/ = \{[^}]*path = )` + regexp.QuoteMeta(move.file) + `;`)
		updated := pattern.ReplaceAllString(project.content, "${1}"+move.folder+"/"+move.file+";")
		if updated != project.content {
			project.content = updated
			fmt.Printf("   %-40s -> %s/\n", move.file, move.folder)
		} else {
			fmt.Printf("   %-40s (not found or already updated)\n", move.file)
		}
	}

	if err := project.save(); err != nil {
		return err
	}
	fmt.Println("\nProject file updated. Group structure still needs the add-files pass.")
	return nil
}
