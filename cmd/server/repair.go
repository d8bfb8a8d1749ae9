package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/doodle-api/internal/config"
	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/pkg/clock"
	"github.com/KirkDiggler/doodle-api/internal/redis"
	"github.com/KirkDiggler/doodle-api/internal/repositories/save"
)

// Save key states found by repair-save
const (
	keyMissing  = "missing"
	keyOK       = "ok"
	keyCorrupt  = "corrupt"
	keyMigrated = "migrated"
)

var (
	repairRedis   string
	repairCatalog string
	repairDryRun  bool
	repairYes     bool
)

var repairCmd = &cobra.Command{
	Use:   "repair-save",
	Short: "Check the saved game in Redis and repair it",
	Long: `Reads the canonical and legacy save keys, reports what they contain and
rewrites a readable save under the canonical key in the current format.
Unreadable saves can be deleted so the next server start begins fresh. Examples:

  repair-save --redis localhost:6379 --dry-run
  repair-save --yes`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&repairRedis, "redis", "", "Redis address (defaults to REDIS_ADDR)")
	repairCmd.Flags().StringVar(&repairCatalog, "catalog", "", "YAML catalog override")
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "Report only, change nothing")
	repairCmd.Flags().BoolVar(&repairYes, "yes", false, "Delete corrupted saves without asking")
}

// keyReport describes one save key
type keyReport struct {
	Key       string
	Status    string
	Version   int
	Gold      float64
	Inventory int
	Err       error
}

type repairOptions struct {
	Key       string
	LegacyKey string
	DryRun    bool
	// Confirm is asked before corrupted keys are deleted
	Confirm func(keys []string) bool
}

type repairResult struct {
	Keys      []keyReport
	Rewritten bool
	Deleted   []string
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if repairRedis != "" {
		cfg.RedisAddr = repairRedis
	}
	if cfg.RedisAddr == "" {
		return fmt.Errorf("a redis address is required (--redis or REDIS_ADDR)")
	}

	cat, err := loadCatalog(repairCatalog)
	if err != nil {
		return err
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := redis.Ping(ctx, client, redisPingTimeout); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Connected to Redis:", cfg.RedisAddr)

	in := bufio.NewReader(cmd.InOrStdin())
	result, err := repairSave(ctx, client, &save.Codec{
		StartingGold: cat.Costs().StartingGold,
		AreaCount:    cat.AreaCount(),
	}, &repairOptions{
		Key:       cfg.SaveKey,
		LegacyKey: cfg.LegacySaveKey,
		DryRun:    repairDryRun,
		Confirm: func(keys []string) bool {
			if repairYes {
				return true
			}
			fmt.Fprintf(out, "\nDelete corrupted saves %s? (yes/no): ", strings.Join(keys, ", "))
			answer, _ := in.ReadString('\n')
			return strings.TrimSpace(answer) == "yes"
		},
	})
	if err != nil {
		return err
	}

	printRepair(out, result, repairDryRun)
	return nil
}

// repairSave inspects both save keys. A readable save is rewritten under the
// canonical key; corrupted keys are deleted once confirmed.
func repairSave(ctx context.Context, client redis.Client, codec *save.Codec, opts *repairOptions) (*repairResult, error) {
	keys := []string{opts.Key}
	if opts.LegacyKey != "" && opts.LegacyKey != opts.Key {
		keys = append(keys, opts.LegacyKey)
	}

	result := &repairResult{}
	var (
		restore []byte
		corrupt []string
	)

	for i, key := range keys {
		report := keyReport{Key: key, Status: keyMissing}

		data, err := client.Get(ctx, key).Bytes()
		switch {
		case stderrors.Is(err, redis.Nil):
			result.Keys = append(result.Keys, report)
			continue
		case err != nil:
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read save").WithMeta("key", key)
		}

		state, meta, err := codec.Decode(data)
		if err != nil {
			report.Status = keyCorrupt
			report.Err = err
			corrupt = append(corrupt, key)
			result.Keys = append(result.Keys, report)
			continue
		}

		report.Status = keyOK
		report.Version = meta.Version
		report.Gold = state.Gold
		report.Inventory = len(state.Inventory)

		// Only the first readable key wins, the same order the server loads in
		if restore == nil {
			restore, err = codec.Encode(state, clock.New().Now())
			if err != nil {
				return nil, err
			}
			if i > 0 {
				report.Status = keyMigrated
			}
		}
		result.Keys = append(result.Keys, report)
	}

	if opts.DryRun {
		return result, nil
	}

	if restore != nil {
		if err := client.Set(ctx, opts.Key, restore, 0).Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write save").WithMeta("key", opts.Key)
		}
		result.Rewritten = true
		// The canonical key now holds a good save
		corrupt = without(corrupt, opts.Key)
	}

	if len(corrupt) > 0 && opts.Confirm != nil && opts.Confirm(corrupt) {
		if err := client.Del(ctx, corrupt...).Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete corrupted saves")
		}
		result.Deleted = corrupt
	}

	return result, nil
}

func without(keys []string, drop string) []string {
	out := keys[:0]
	for _, k := range keys {
		if k != drop {
			out = append(out, k)
		}
	}
	return out
}

func printRepair(w io.Writer, result *repairResult, dryRun bool) {
	for _, k := range result.Keys {
		switch k.Status {
		case keyMissing:
			fmt.Fprintf(w, "- %s: missing\n", k.Key)
		case keyCorrupt:
			fmt.Fprintf(w, "✗ %s: corrupted (%v)\n", k.Key, k.Err)
		default:
			fmt.Fprintf(w, "✓ %s: %s, version %d, %.0f gold, %d doodles\n",
				k.Key, k.Status, k.Version, k.Gold, k.Inventory)
		}
	}

	switch {
	case dryRun:
		fmt.Fprintln(w, "\nDry run - no changes made")
	case result.Rewritten:
		fmt.Fprintln(w, "\nSave rewritten in the current format")
	}
	for _, k := range result.Deleted {
		fmt.Fprintf(w, "Deleted %s\n", k)
	}
}
