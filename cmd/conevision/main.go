package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/davecgh/go-spew/spew"
	"github.com/skratchdot/open-golang/open"
	"github.com/urfave/cli"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/bytearena/conevision/common/types/regioncontainer"
	"github.com/bytearena/conevision/common/utils"
	"github.com/bytearena/conevision/common/utils/vector"
	"github.com/bytearena/conevision/common/visibility2d"
	"github.com/bytearena/conevision/vizserver"
	viztypes "github.com/bytearena/conevision/vizserver/types"
)

func main() {
	app := makeapp()
	app.Run(os.Args)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "conevision"
	app.Description = "2D cone visibility toolkit"
	app.Version = utils.GetVersion()

	app.Commands = []cli.Command{
		{
			Name:    "compute",
			Aliases: []string{"c"},
			Usage:   "Compute the visibility polygon of a viewpoint in a region document",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "file", Value: "", Usage: "Region document (JSON); required"},
				cli.StringFlag{Name: "viewpoint", Value: "", Usage: "Id of a viewpoint declared in the document"},
				cli.Float64Flag{Name: "x", Value: 0, Usage: "Viewpoint x, when not using --viewpoint"},
				cli.Float64Flag{Name: "y", Value: 0, Usage: "Viewpoint y, when not using --viewpoint"},
				cli.Float64Flag{Name: "facing", Value: 0, Usage: "Facing angle in degrees"},
				cli.Float64Flag{Name: "halfangle", Value: 180, Usage: "Cone half-angle in degrees"},
				cli.BoolFlag{Name: "validate", Usage: "Reject documents whose boundary edges cross"},
				cli.BoolFlag{Name: "steps", Usage: "Drive the sweep one event at a time and print each state"},
				cli.BoolFlag{Name: "clip", Usage: "Clip the visibility polygon against the region outline"},
				cli.BoolFlag{Name: "dump", Usage: "Dump the raw result structure"},
			},
			Action: func(c *cli.Context) error {
				computeAction(
					c.String("file"),
					c.String("viewpoint"),
					c.Float64("x"), c.Float64("y"),
					c.Float64("facing"), c.Float64("halfangle"),
					c.Bool("validate"), c.Bool("steps"), c.Bool("clip"), c.Bool("dump"),
				)
				return nil
			},
		},
		{
			Name:    "viz",
			Aliases: []string{"v"},
			Usage:   "Serve an animated view of the sweeps over websocket",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "file", Value: "", Usage: "Region document (JSON); required"},
				cli.StringFlag{Name: "host", Value: "0.0.0.0", Usage: "IP the server binds to"},
				cli.IntFlag{Name: "port", Value: 8080, Usage: "Port the server binds to"},
				cli.BoolFlag{Name: "no-browser", Usage: "Disable automatic browser opening at start"},
			},
			Action: func(c *cli.Context) error {
				vizAction(
					c.String("file"),
					c.String("host"),
					c.Int("port"),
					c.Bool("no-browser"),
				)
				return nil
			},
		},
	}

	return app
}

func loadContainer(file string, validate bool) *regioncontainer.RegionContainer {
	if file == "" {
		utils.FailWith(bettererrors.New("No region document was specified; use --file"))
	}

	container, err := regioncontainer.LoadFile(file)
	if err != nil {
		utils.FailWith(bettererrors.
			New("Could not load region document").
			SetContext("file", file).
			With(bettererrors.NewFromErr(err)),
		)
	}

	if validate {
		if err := container.CheckCrossings(); err != nil {
			utils.FailWith(bettererrors.
				New("Region document failed validation").
				SetContext("file", file).
				With(bettererrors.NewFromErr(err)),
			)
		}
	}

	return container
}

func pickViewpoint(container *regioncontainer.RegionContainer, id string, x, y, facing, halfangle float64) visibility2d.Viewpoint {
	if id == "" {
		return visibility2d.MakeViewpoint(vector.MakeVector2(x, y), facing, halfangle)
	}

	viewpoint, ok := container.Viewpoint(id)
	if !ok {
		utils.FailWith(bettererrors.
			New("Viewpoint not found in region document").
			SetContext("viewpoint", id),
		)
	}

	return viewpoint
}

func computeAction(file string, viewpointId string, x, y, facing, halfangle float64, validate, steps, clip, dump bool) {

	container := loadContainer(file, validate)
	viewpoint := pickViewpoint(container, viewpointId, x, y, facing, halfangle)

	region, err := container.ToRegion()
	if err != nil {
		utils.FailWith(bettererrors.
			New("Could not build region").
			With(bettererrors.NewFromErr(err)),
		)
	}

	var result []vector.Vector2

	if steps {
		vision, err := visibility2d.BeginVisibility(region, viewpoint)
		if err != nil {
			utils.FailWith(bettererrors.NewFromErr(err))
		}

		for {
			done, err := vision.Step()
			if err != nil {
				utils.FailWith(bettererrors.
					New("Sweep failed").
					With(bettererrors.NewFromErr(err)),
				)
			}

			if snapshot, ok := vision.Snapshot(); ok {
				line, _ := json.Marshal(snapshot)
				fmt.Println(string(line))
			}

			if done {
				break
			}
		}

		result = vision.Result()

		// the stepped sweep must land on the same polygon as a
		// synchronous run over the same inputs
		sync, err := visibility2d.ComputeVisibility(region, viewpoint)
		if err != nil {
			utils.FailWith(bettererrors.NewFromErr(err))
		}
		utils.Assert(len(sync) == len(result), "stepped sweep diverged from the synchronous sweep")
		for i := range sync {
			utils.Assert(sync[i].Equals(result[i]), "stepped sweep diverged from the synchronous sweep")
		}
	} else {
		result, err = visibility2d.ComputeVisibility(region, viewpoint)
		if err != nil {
			utils.FailWith(bettererrors.
				New("Sweep failed").
				With(bettererrors.NewFromErr(err)),
			)
		}
	}

	if clip {
		result = clipAgainstOutline(result, viewpoint, container)
	}

	if dump {
		spew.Dump(result)
		return
	}

	out, err := json.Marshal(result)
	utils.Check(err, "Could not marshal result")
	fmt.Println(string(out))
}

// clipAgainstOutline intersects the closed visibility polygon with the
// region outline, guarding downstream consumers against the occasional
// float excursion outside the outer boundary
func clipAgainstOutline(result []vector.Vector2, viewpoint visibility2d.Viewpoint, container *regioncontainer.RegionContainer) []vector.Vector2 {

	subject := make(polyclip.Contour, 0, len(result))
	for _, point := range result {
		subject = append(subject, polyclip.Point{X: point.GetX(), Y: point.GetY()})
	}

	outline := make(polyclip.Contour, 0, len(container.Data.Outline.Points))
	for _, point := range container.Data.Outline.Points {
		outline = append(outline, polyclip.Point{X: point.X, Y: point.Y})
	}

	clipped := polyclip.Polygon{subject}.Construct(polyclip.INTERSECTION, polyclip.Polygon{outline})
	if len(clipped) == 0 {
		return result
	}

	// keep the piece containing the viewpoint; intersection may split a
	// degenerate polygon into several contours
	contour := clipped[0]
	for _, candidate := range clipped {
		if candidate.Contains(polyclip.Point{X: viewpoint.GetPosition().GetX(), Y: viewpoint.GetPosition().GetY()}) {
			contour = candidate
			break
		}
	}

	out := make([]vector.Vector2, 0, len(contour))
	for _, point := range contour {
		out = append(out, vector.MakeVector2(point.X, point.Y))
	}

	return out
}

func vizAction(file string, host string, port int, nobrowser bool) {

	container := loadContainer(file, false)

	if len(container.Data.Viewpoints) == 0 {
		utils.FailWith(bettererrors.New("Region document declares no viewpoints; nothing to visualize"))
	}

	computations := make([]*viztypes.VizComputation, 0, len(container.Data.Viewpoints))
	for _, regionviewpoint := range container.Data.Viewpoints {
		computations = append(computations, viztypes.NewVizComputation(
			regionviewpoint.Id,
			container,
			regionviewpoint.ToViewpoint(),
		))
	}

	vizservice := vizserver.NewVizService(
		host+":"+strconv.Itoa(port),
		func() ([]*viztypes.VizComputation, error) { return computations, nil },
	)

	url := "http://localhost:" + strconv.Itoa(port) + "/"
	if !nobrowser {
		open.Run(url)
	}

	fmt.Println("Serving sweeps at " + url)

	if err := vizservice.ListenAndServe(); err != nil {
		utils.FailWith(bettererrors.
			New("Viz server failed").
			With(bettererrors.NewFromErr(err)),
		)
	}
}
