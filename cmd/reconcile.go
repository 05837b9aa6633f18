package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"relcast/core/config"
	"relcast/core/entity"
	"relcast/core/logger"
	"relcast/core/relation"
	"relcast/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	oldFile       string
	newFile       string
	relationField string
	castRaw       bool
	applyPlan     bool
	requiredField bool
)

// reconcileCmd reconciles a prior entity document against a desired one and
// reports the mutation plan.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a relation field between two JSON documents",
	Long: `Reconcile a relation field of the catalog schema between a prior value
(--old) and a desired value (--new), both JSON files.

Reports one record per affected nested entity with its action (insert,
update, delete) and any validation errors.

Examples:
  # Plan only (structured change)
  relcast reconcile --old old.json --new new.json

  # Treat the new document as untrusted raw parameters
  relcast reconcile --old old.json --new params.json --cast

  # Plan and print the materialized result
  relcast reconcile --old old.json --new new.json --apply`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&oldFile, "old", "", "JSON file holding the prior relation value")
	reconcileCmd.Flags().StringVar(&newFile, "new", "", "JSON file holding the desired relation value")
	reconcileCmd.Flags().StringVar(&relationField, "relation", "", "Relation field to reconcile (default from config)")
	reconcileCmd.Flags().BoolVar(&castRaw, "cast", false, "Treat the new document as raw parameters (recoverable validation)")
	reconcileCmd.Flags().BoolVar(&applyPlan, "apply", false, "Print the materialized value after applying the plan")
	reconcileCmd.Flags().BoolVar(&requiredField, "required", false, "Treat the relation field as required during cast")
	_ = reconcileCmd.MarkFlagRequired("new")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	base, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l := logger.WithRunID(base)

	field := relationField
	if field == "" {
		field = cfg.Engine.Relation
	}

	schema := catalog.Schema()
	desc, ok := schema.Relation(cfg.Engine.Owner, field)
	if !ok {
		return fmt.Errorf("relation %s.%s is not declared in the catalog schema", cfg.Engine.Owner, field)
	}

	oldVal, err := readJSON(oldFile)
	if err != nil {
		return fmt.Errorf("failed to read old value: %w", err)
	}
	newVal, err := readJSON(newFile)
	if err != nil {
		return fmt.Errorf("failed to read new value: %w", err)
	}

	l.Info("Planning reconciliation",
		zap.String("owner", cfg.Engine.Owner),
		zap.String("relation", field),
		zap.String("cardinality", string(desc.Cardinality)),
	)

	var res *relation.Result
	if castRaw {
		parent := entity.Entity{field: oldVal}
		params := entity.NewParams(map[string]any{field: newVal})
		var required []string
		if requiredField {
			required = []string{field}
		}
		res, err = relation.Cast(desc, parent, params, required)
	} else {
		res, err = relation.Change(desc, newVal, oldVal)
	}
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	printPlanReport(l, desc, res)

	if applyPlan {
		return printMaterialized(desc, res)
	}
	return nil
}

// readJSON decodes a JSON document from a file. An empty path reads as an
// absent value.
func readJSON(path string) (any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// printPlanReport prints a formatted reconciliation report using logger.
func printPlanReport(l *zap.Logger, desc *relation.Descriptor, res *relation.Result) {
	s := res.Summarize()

	l.Info("Reconciliation report",
		zap.Bool("changed", res.Changed),
		zap.Bool("valid", res.Valid),
		zap.Int("inserts", s.Inserts),
		zap.Int("updates", s.Updates),
		zap.Int("deletes", s.Deletes),
		zap.Int("invalid", s.Invalid),
	)

	if res.FieldError != nil {
		l.Warn("Field rejected",
			zap.String("field", res.FieldError.Field),
			zap.String("message", res.FieldError.Message),
		)
		return
	}

	for i, rec := range res.Records() {
		fields := []zap.Field{
			zap.Int("position", i),
			zap.String("action", string(rec.Action())),
		}
		if id, ok := rec.Model.Identity(desc.IdentityField); ok {
			fields = append(fields, zap.String("identity", id))
		}
		if len(rec.Errors) > 0 {
			fields = append(fields, zap.Any("errors", rec.Errors))
		}
		l.Info("Planned record", fields...)
	}
}

// printMaterialized applies the plan and prints the resulting value as JSON
// to stdout.
func printMaterialized(desc *relation.Descriptor, res *relation.Result) error {
	var out any
	switch desc.Cardinality {
	case relation.Many:
		out = relation.ApplyMany(desc, res.Many)
	default:
		if e := relation.Apply(desc, res.One); e != nil {
			out = e
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
