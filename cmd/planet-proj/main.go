// planet-proj projects a sequence of planetary disk images onto a cylindrical
// map, batch-driving the same engine the interactive views use.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ironsheep/planet-projector/internal/imaging"
	"github.com/ironsheep/planet-projector/internal/notify"
	"github.com/ironsheep/planet-projector/internal/projection"
	"github.com/ironsheep/planet-projector/internal/render"
	"github.com/ironsheep/planet-projector/internal/worker"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var debug bool

func main() {
	// Handle --version before flag parsing, like -h it short-circuits
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("planet-proj %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	// Configure logging to stderr (stdout stays clean for shell pipelines)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	debug = os.Getenv("PLANET_PROJ_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("planet-proj v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	var (
		outDir         = flag.String("out", ".", "output directory for projected frames")
		projName       = flag.String("projection", "equirectangular", "projection type: equirectangular or lambert")
		bounce         = flag.Bool("bounce", false, "duplicate frames in reverse order for bounce-back animation")
		rotComp        = flag.Float64("rotation-comp", -1, "per-frame rotation compensation in pixels (negative: derive from the planet's rotation)")
		planetName     = flag.String("planet", "Jupiter", "planet preset providing flattening and rotation period")
		planetsFile    = flag.String("planets", "", "YAML file with additional planet presets")
		frameInterval  = flag.Duration("frame-interval", time.Minute, "capture interval between successive frames")
		inclination    = flag.Float64("inclination", 0, "tilt of the planet's axis toward the viewer, in degrees")
		roll           = flag.Float64("roll", 0, "rotation of the planet's axis within the image plane, in degrees")
		flattening     = flag.Float64("flattening", -1, "polar flattening override (negative: use the preset)")
		rotationPeriod = flag.Duration("rotation-period", 0, "sidereal rotation period override (zero: use the preset)")
		preview        = flag.String("preview", "", "write a disk detection preview of the first frame to this path")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: planet-proj [options] <frame.png>... | <frame-dir>\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Frames must share dimensions and pixel format and be given in capture order.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nEnvironment variables:\n  PLANET_PROJ_LOG_LEVEL=debug    Enable debug logging\n")
	}
	flag.Parse()

	files, err := collectInputs(flag.Args())
	if err != nil {
		return err
	}
	kind, err := projection.ParseType(*projName)
	if err != nil {
		return err
	}

	planets := projection.Planets()
	if *planetsFile != "" {
		if planets, err = projection.LoadPlanets(*planetsFile); err != nil {
			return err
		}
	}
	planet, ok := projection.PlanetByName(planets, *planetName)
	if !ok {
		return fmt.Errorf("unknown planet %q (have %s)", *planetName, planetNames(planets))
	}

	// batch metadata comes from the first frame; the loader rejects any
	// frame that deviates from it
	width, height, format, err := imaging.ProbeFrame(files[0])
	if err != nil {
		return err
	}
	if debug {
		log.Printf("Batch metadata: %d frames, %dx%d %s", len(files), width, height, format)
	}

	store := imaging.NewStore()
	items := make([]worker.LoadItem, len(files))
	textures := make([]imaging.TextureID, len(files))
	for i, path := range files {
		textures[i] = store.Create(width, height)
		items[i] = worker.LoadItem{Texture: textures[i], Path: path}
	}

	cmds := make(chan worker.Command, worker.CommandQueueCap)
	go worker.Run(cmds, store, render.NewCPU(store))
	defer close(cmds)

	progress := make(chan worker.Progress, 1)
	result := make(chan worker.Result, 1)
	cmds <- worker.LoadImages{
		Width:    width,
		Height:   height,
		Format:   format,
		Items:    items,
		Progress: progress,
		Result:   result,
	}
	res := awaitJob(progress, result)
	if res.Status != worker.Succeeded {
		return fmt.Errorf("loading frames: %s", res.Err)
	}
	disk := *res.Disk
	log.Printf("Detected disk: center (%.0f, %.0f), diameter %.0f px", disk.CenterX, disk.CenterY, disk.Diameter)

	session := projection.NewSession(store, textures, width, height, disk)
	sub := session.SubscribeParams(notify.Func[projection.SourceParameters](func(p projection.SourceParameters) {
		if debug {
			log.Printf("Parameters: %+v", p)
		}
	}))
	defer sub.Close()

	session.SetPlanet(planet)
	session.SetFrameInterval(*frameInterval)
	session.SetInclination(*inclination)
	session.SetRoll(*roll)
	if *flattening >= 0 {
		session.SetFlattening(*flattening)
	}
	if *rotationPeriod > 0 {
		session.SetSiderealRotationPeriod(*rotationPeriod)
	}

	if *preview != "" {
		buf, ok := store.Get(session.CurrentTexture())
		if !ok {
			return fmt.Errorf("no buffer for first frame")
		}
		if err := imaging.SaveImage(*preview, imaging.DiskOverlay(buf, disk)); err != nil {
			return err
		}
		log.Printf("Wrote detection preview %s", *preview)
	}

	params := session.Params()
	comp := *rotComp
	if comp < 0 {
		comp = projection.AutoRotationComp(params)
		if debug {
			log.Printf("Derived rotation compensation: %.2f px/frame", comp)
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	progress = make(chan worker.Progress, 1)
	result = make(chan worker.Result, 1)
	cmds <- worker.Projection{
		OutputDir:    *outDir,
		Sources:      session.Textures(),
		ImageWidth:   width,
		ImageHeight:  height,
		Params:       params,
		RotationComp: comp,
		Kind:         kind,
		BounceBack:   *bounce,
		Progress:     progress,
		Result:       result,
	}
	res = awaitJob(progress, result)
	if res.Status != worker.Succeeded {
		return fmt.Errorf("projecting frames: %s", res.Err)
	}

	outputs := session.NumImages()
	if *bounce {
		outputs = 2*session.NumImages() - 1
	}
	outWidth, outHeight := projection.OutputSize(params, comp, kind)
	log.Printf("Wrote %d %s frames (%dx%d) to %s", outputs, kind, outWidth, outHeight, *outDir)
	return nil
}

// awaitJob drains progress into the log until the terminal result arrives.
func awaitJob(progress <-chan worker.Progress, result <-chan worker.Result) worker.Result {
	for {
		select {
		case p := <-progress:
			log.Printf("[%3.0f%%] %s", p.Fraction*100, p.Description)
		case res := <-result:
			return res
		}
	}
}

// collectInputs resolves the positional arguments to an ordered frame list. A
// single directory argument expands to its image files in name order.
func collectInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no input frames given (see --help)")
	}

	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			entries, err := os.ReadDir(args[0])
			if err != nil {
				return nil, err
			}
			var files []string
			for _, e := range entries {
				if e.IsDir() || !isImageFile(e.Name()) {
					continue
				}
				files = append(files, filepath.Join(args[0], e.Name()))
			}
			if len(files) == 0 {
				return nil, fmt.Errorf("no image files in %s", args[0])
			}
			sort.Strings(files)
			return files, nil
		}
	}
	return args, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp":
		return true
	}
	return false
}

func planetNames(planets []projection.Planet) string {
	names := make([]string, len(planets))
	for i, p := range planets {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
