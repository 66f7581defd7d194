package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "tools",
		Usage: "maintenance tools for the AntAttack3D iOS project",
		Commands: []*cli.Command{
			{
				Name:  "convert",
				Usage: "convert the OpenSCAD map to the engine's JSON height map",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "in", Value: defaultMapInput, Usage: "OpenSCAD map source"},
					&cli.StringFlag{Name: "out", Value: defaultMapOutput, Usage: "JSON destination"},
				},
				Action: func(c *cli.Context) error {
					return convertMap(c.String("in"), c.String("out"))
				},
			},
			{
				Name:      "add-files",
				Usage:     "register new Swift sources under a group in the Xcode project",
				ArgsUsage: "[file ...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "project", Value: defaultProjectFile, Usage: "project.pbxproj to patch"},
					&cli.StringFlag{Name: "group", Value: defaultGroupName, Usage: "group to place the files under"},
				},
				Action: func(c *cli.Context) error {
					files := c.Args().Slice()
					if len(files) == 0 {
						files = defaultFilesToAdd
					}
					return addFilesToProject(c.String("project"), files, c.String("group"))
				},
			},
			{
				Name:  "reorganize",
				Usage: "rewrite source paths in the Xcode project after the folder move",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "project", Value: defaultProjectFile, Usage: "project.pbxproj to patch"},
				},
				Action: func(c *cli.Context) error {
					return reorganizeProject(c.String("project"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
