package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/adaptive-layout/internal/adaptive"
	"github.com/piwi3910/adaptive-layout/internal/devicetype"
	"github.com/piwi3910/adaptive-layout/internal/export"
	"github.com/piwi3910/adaptive-layout/internal/importer"
	"github.com/piwi3910/adaptive-layout/internal/model"
	"github.com/piwi3910/adaptive-layout/internal/project"
)

var kindColors = map[devicetype.Kind]*color.Color{
	devicetype.KindCompact:    color.New(color.FgYellow),
	devicetype.KindMedium:     color.New(color.FgCyan),
	devicetype.KindFoldable:   color.New(color.FgMagenta),
	devicetype.KindExpanded:   color.New(color.FgGreen),
	devicetype.KindLarge:      color.New(color.FgBlue),
	devicetype.KindExtraLarge: color.New(color.FgHiBlue, color.Bold),
}

func kindText(k devicetype.Kind) string {
	if c, ok := kindColors[k]; ok {
		return c.Sprint(k.String())
	}
	return k.String()
}

// newClassifyCmd creates the classify command
func newClassifyCmd(opts *options) *cobra.Command {
	var (
		width, height int
		hinges        []string
		tabletop      bool
		bucket        bool
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a window size and posture",
		Long: `Classify a window size (in dp) and optional fold posture.

Hinges can be given more than once. Tabletop only applies to windows
with at least one hinge. With --bucket the size is first rounded down
to its window size class, as the GUI does by default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 0 || height < 0 {
				return fmt.Errorf("width and height must not be negative")
			}
			posture, err := postureFromFlags(width, height, hinges, tabletop)
			if err != nil {
				return err
			}

			info := model.MeasureWindow(float32(width), float32(height), posture, !bucket)
			d := devicetype.ClassifyWindow(info)
			opts.logger.Debug().
				Int("width", width).Int("height", height).
				Int("hinges", len(posture.Hinges)).
				Str("device", d.String()).
				Msg("classified")

			printDevice(cmd.OutOrStdout(), d, adaptive.PlanFor(d))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "window width in dp")
	cmd.Flags().IntVar(&height, "height", 0, "window height in dp")
	cmd.Flags().StringSliceVar(&hinges, "hinge", nil, "hinge orientation: vertical or horizontal (repeatable)")
	cmd.Flags().BoolVar(&tabletop, "tabletop", false, "device is in tabletop posture")
	cmd.Flags().BoolVar(&bucket, "bucket", false, "round the size down to its window size class first")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

// postureFromFlags builds a posture from --hinge values. "none" entries are
// skipped.
func postureFromFlags(width, height int, hinges []string, tabletop bool) (model.WindowPosture, error) {
	var posture model.WindowPosture
	for _, h := range hinges {
		orientation, ok := importer.ParseHinge(h)
		if !ok {
			return model.WindowPosture{}, fmt.Errorf("unknown hinge orientation %q", h)
		}
		if orientation == importer.HingeNone {
			continue
		}
		posture.Hinges = append(posture.Hinges, model.NewHinge(width, height, orientation == importer.HingeVertical))
	}
	posture.Tabletop = tabletop && posture.IsFoldable()
	return posture, nil
}

func printDevice(w io.Writer, d devicetype.DeviceType, plan adaptive.Plan) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Device type:\t%s (rank %d)\n", kindText(d.Kind()), d.Rank())
	fmt.Fprintf(tw, "Minimum size:\t%d x %d dp\n", d.MinWidth(), d.MinHeight())
	fmt.Fprintf(tw, "Aspect ratio:\t%s\n", adaptive.FormatRatio(d.AspectRatio()))
	fmt.Fprintf(tw, "Landscape phone:\t%s\n", adaptive.YesNo(d.IsLandscapePhone()))
	if fold, ok := d.Fold(); ok {
		fmt.Fprintf(tw, "Fold:\t%d hinge(s), tabletop %s\n", len(fold.Hinges), adaptive.YesNo(fold.Tabletop))
	}
	fmt.Fprintf(tw, "Layout:\t%s\n", plan.Describe())
	tw.Flush()
}

// newPresetsCmd creates the presets command
func newPresetsCmd(opts *options) *cobra.Command {
	var (
		catalogPath string
		exact       bool
		pdfPath     string
		xlsxPath    string
		cardsPath   string
	)

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Classify every device preset and optionally export the results",
		Long: `Classify every preset of a catalog. Without --catalog the user's
catalog is used (created with the default presets when missing). An
explicit --catalog must exist.

--pdf, --xlsx and --cards write the classification report, the XLSX
matrix and printable preset cards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, path, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			opts.logger.Debug().Str("path", path).Int("presets", len(catalog.Presets)).Msg("loaded catalog")

			rows := export.ClassifyCatalog(catalog, exact)
			printPresets(cmd.OutOrStdout(), rows)

			return exportAll(opts, rows, []exportJob{
				{flag: "pdf", path: pdfPath, write: export.ExportReport},
				{flag: "xlsx", path: xlsxPath, write: export.ExportWorkbook},
				{flag: "cards", path: cardsPath, write: export.ExportPresetCards},
			})
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "preset catalog JSON (default is the user's catalog)")
	cmd.Flags().BoolVar(&exact, "exact", true, "classify exact dimensions instead of window size classes")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the PDF classification report to this path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the XLSX classification matrix to this path")
	cmd.Flags().StringVar(&cardsPath, "cards", "", "write printable preset cards (PDF) to this path")

	return cmd
}

// loadCatalog loads an explicit catalog or the user's one. Only the user's
// catalog is created when missing.
func loadCatalog(path string) (model.PresetCatalog, string, error) {
	if path == "" {
		return project.LoadOrCreatePresets()
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return model.PresetCatalog{}, path, fmt.Errorf("preset catalog %s not found: %w", path, err)
	}
	catalog, err := project.LoadPresets(path)
	if err != nil {
		return model.PresetCatalog{}, path, fmt.Errorf("loading presets: %w", err)
	}
	return catalog, path, nil
}

// exportJob is one export requested through a command line flag.
type exportJob struct {
	flag  string
	path  string
	write func(string, []export.Classification) error
}

// exportAll writes every requested export concurrently. Jobs without a path
// are skipped. Two exports may not share a path.
func exportAll(opts *options, rows []export.Classification, jobs []exportJob) error {
	owners := make(map[string]string, len(jobs))
	for _, job := range jobs {
		if job.path == "" {
			continue
		}
		if other, ok := owners[job.path]; ok {
			return fmt.Errorf("--%s and --%s both write to %s", other, job.flag, job.path)
		}
		owners[job.path] = job.flag
	}

	var g errgroup.Group
	for _, job := range jobs {
		if job.path == "" {
			continue
		}
		g.Go(func() error {
			if err := job.write(job.path, rows); err != nil {
				return fmt.Errorf("exporting %s: %w", job.path, err)
			}
			opts.logger.Info().Str("export", job.flag).Str("path", job.path).Msg("exported")
			return nil
		})
	}
	return g.Wait()
}

func printPresets(w io.Writer, rows []export.Classification) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tPOSTURE\tTYPE\tLANDSCAPE\tLAYOUT")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d x %d\t%s\t%s\t%s\t%s\n",
			r.Preset.Name,
			r.Preset.WidthDp, r.Preset.HeightDp,
			posture(r.Preset),
			kindText(r.Device.Kind()),
			adaptive.YesNo(r.Device.IsLandscapePhone()),
			r.Plan.Describe(),
		)
	}
	tw.Flush()

	counts := export.CountByKind(rows)
	parts := make([]string, 0, len(counts))
	for _, k := range devicetype.Kinds() {
		if counts[k] > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", kindText(k), counts[k]))
		}
	}
	fmt.Fprintf(w, "\n%d presets: %s\n", len(rows), strings.Join(parts, ", "))
}

func posture(p model.DevicePreset) string {
	switch {
	case len(p.Hinges) == 0:
		return "flat"
	case p.Tabletop:
		return "tabletop"
	default:
		return "open"
	}
}
