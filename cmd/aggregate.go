package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"tvgu-data-hub/core/config"
	"tvgu-data-hub/core/logger"
	"tvgu-data-hub/core/storage"
	"tvgu-data-hub/feature/export"
	"tvgu-data-hub/feature/hub"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// aggregateCmd represents the aggregate command
var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Build the dataset once and export it",
	Long: `Collects structs, teachers and schedules, resolves every cross-reference and writes
the dataset as JSON. Without an output target only a summary is logged.`,
	Args: cobra.NoArgs,
	RunE: runAggregate,
}

func init() {
	RootCmd.AddCommand(aggregateCmd)

	flags := aggregateCmd.Flags()
	flags.StringP("output", "o", "", "Path of the output JSON file")
	flags.BoolP("output-auto", "a", false, "Name the output file after today's date")
	flags.StringP("output-directory", "d", "", "Directory for the output file (created when missing)")
	flags.BoolP("prettify", "p", false, "Indent the output JSON")
	flags.Bool("upload", false, "Upload the dataset to object storage")
	flags.Bool("persist", false, "Replace the hub tables in the database with the dataset")
	flags.Bool("heuristics", true, "Resolve ambiguous teacher initials by scoring candidates")
	flags.Bool("skip-unrecognized", false, "Drop teacher references that match no roster entry")

	aggregateCmd.MarkFlagsMutuallyExclusive("output", "output-auto")
}

// applyFlags lets explicitly set flags override the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("heuristics") {
		cfg.Hub.UseHeuristics, _ = flags.GetBool("heuristics")
	}
	if flags.Changed("skip-unrecognized") {
		cfg.Hub.SkipUnrecognized, _ = flags.GetBool("skip-unrecognized")
	}
	if flags.Changed("output-directory") {
		cfg.Output.Directory, _ = flags.GetString("output-directory")
	}
	if flags.Changed("prettify") {
		cfg.Output.Prettify, _ = flags.GetBool("prettify")
	}
}

func runAggregate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	start := time.Now()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	output, _ := cmd.Flags().GetString("output")
	auto, _ := cmd.Flags().GetBool("output-auto")
	upload, _ := cmd.Flags().GetBool("upload")
	persist, _ := cmd.Flags().GetBool("persist")

	path, err := export.ResolvePath(output, auto, cfg.Output.Directory, start)
	if err != nil {
		return err
	}

	var db *gorm.DB
	if persist {
		if db, err = connectDatabase(cfg, logg, true); err != nil {
			return err
		}
	}

	src, client, err := buildSources(cfg, logg, db)
	if err != nil {
		return err
	}

	res, err := hub.NewService(src, cfg.Hub.Options(), logg).Run(ctx)
	if err != nil {
		return err
	}

	data, err := export.Encode(res.Dataset, cfg.Output.Prettify)
	if err != nil {
		return err
	}

	if path != "" {
		if err := export.WriteFile(path, data); err != nil {
			return err
		}
		logg.Info("Dataset written", zap.String("file", path), zap.Int("bytes", len(data)))
	}

	if upload {
		if client == nil {
			if client, err = storage.NewClient(cfg.Storage); err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}

		name := export.AutoName(start)
		if path != "" {
			name = filepath.Base(path)
		}
		object, err := export.Upload(ctx, client, cfg.Storage.Bucket, cfg.Output.BucketPrefix, name, data)
		if err != nil {
			return err
		}
		logg.Info("Dataset uploaded", zap.String("bucket", cfg.Storage.Bucket), zap.String("object", object))
	}

	if persist {
		if err := export.Persist(ctx, db, res.Dataset); err != nil {
			return err
		}
		logg.Info("Dataset persisted", zap.String("driver", cfg.Database.Driver))
	}

	logg.Info("Aggregation completed", zap.Duration("execution_time", time.Since(start)))
	return nil
}
