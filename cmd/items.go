package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"order-items/feature/lineitems"
	"order-items/feature/lineitems/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	itemsFile   string
	itemsDryRun bool
	yesConfirm  bool
)

// itemsCmd is the parent command for item operations.
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Inspect and modify document line items",
	Long: `Operate on the invoice and cost items of a document from the command line.

Examples:
  # List invoice items of document 42
  items list invoice 42

  # Preview a save without writing
  items save invoice 42 --file items.json --dry-run

  # Remove everything attached to a deleted document
  items teardown 42 --yes`,
}

var itemsListCmd = &cobra.Command{
	Use:   "list <kind> <document-id>",
	Short: "List items in display order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, docID, err := parseKindAndDocument(args[0], args[1])
		if err != nil {
			return err
		}
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		items, err := rt.service.List(cmd.Context(), kind, docID)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), items)
	},
}

var itemsSaveCmd = &cobra.Command{
	Use:   "save <kind> <document-id>",
	Short: "Reconcile a full submission read from --file or stdin",
	Long: `Reads a JSON array of items and reconciles it against the stored rows.
Items with an id are updated, items without one are inserted unless their
product_name is empty, and stored items missing from the array are deleted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, docID, err := parseKindAndDocument(args[0], args[1])
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		if itemsFile != "" && itemsFile != "-" {
			f, err := os.Open(itemsFile)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", itemsFile, err)
			}
			defer f.Close()
			in = f
		}

		var submitted []models.SubmittedLineItem
		if err := json.NewDecoder(in).Decode(&submitted); err != nil {
			return fmt.Errorf("failed to parse items: %w", err)
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		result, err := rt.service.Save(cmd.Context(), kind, docID, submitted, lineitems.SaveOptions{DryRun: itemsDryRun})
		if err != nil {
			return err
		}
		printPlanReport(rt.logger, result)
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var itemsPatchCmd = &cobra.Command{
	Use:   "patch <kind> <item-id> <field> <value>",
	Short: "Update one field of an item",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := parseKindAndDocument(args[0], args[1])
		if err != nil {
			return err
		}
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		if err := rt.service.PatchField(cmd.Context(), kind, id, args[2], args[3]); err != nil {
			return err
		}
		rt.logger.Info("Item updated", zap.Uint64("id", id), zap.String("field", args[2]))
		return nil
	},
}

var itemsReorderCmd = &cobra.Command{
	Use:   "reorder <kind> <document-id> <id>...",
	Short: "Set display order to the given id sequence",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, docID, err := parseKindAndDocument(args[0], args[1])
		if err != nil {
			return err
		}
		positions := make([]models.Position, 0, len(args)-2)
		for i, raw := range args[2:] {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", raw)
			}
			positions = append(positions, models.Position{ID: id, SortOrder: i + 1})
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		moved, err := rt.service.Reorder(cmd.Context(), kind, docID, positions)
		if err != nil {
			return err
		}
		if int(moved) != len(positions) {
			rt.logger.Warn("Some ids do not belong to the document and were left alone",
				zap.Int("requested", len(positions)), zap.Int64("moved", moved))
		}
		return nil
	},
}

var itemsSeedCmd = &cobra.Command{
	Use:   "seed <document-id>",
	Short: "Create the blank first invoice row of a new document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID, err := parseDocumentID(args[0])
		if err != nil {
			return err
		}
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		id, seeded, err := rt.service.SeedInitialItem(cmd.Context(), docID)
		if err != nil {
			return err
		}
		if !seeded {
			rt.logger.Info("Document already has invoice items", zap.Uint64("document_id", docID))
			return nil
		}
		rt.logger.Info("Seed row created", zap.Uint64("document_id", docID), zap.Uint64("id", id))
		return nil
	},
}

var itemsTeardownCmd = &cobra.Command{
	Use:   "teardown <document-id>",
	Short: "Delete all invoice and cost items of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID, err := parseDocumentID(args[0])
		if err != nil {
			return err
		}
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		if !yesConfirm && !confirmDestructiveAction(cmd.InOrStdin(), cmd.OutOrStdout()) {
			rt.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		result, err := rt.service.Teardown(cmd.Context(), docID)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var itemsDeleteCmd = &cobra.Command{
	Use:   "delete <kind> <document-id> <item-id>",
	Short: "Delete one item of a document",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, docID, err := parseKindAndDocument(args[0], args[1])
		if err != nil {
			return err
		}
		id, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[2])
		}
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		return rt.service.DeleteItem(cmd.Context(), kind, id, docID)
	},
}

var itemsSummaryCmd = &cobra.Command{
	Use:   "summary <document-id>",
	Short: "Print both collections with totals and profit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID, err := parseDocumentID(args[0])
		if err != nil {
			return err
		}
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		sum, err := rt.service.Summary(cmd.Context(), docID)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), sum)
	},
}

var itemsExportCmd = &cobra.Command{
	Use:   "export <document-id>",
	Short: "Upload the document summary to object storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID, err := parseDocumentID(args[0])
		if err != nil {
			return err
		}
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		key, err := rt.service.Export(cmd.Context(), docID)
		if err != nil {
			return err
		}
		rt.logger.Info("Snapshot exported", zap.String("bucket", rt.cfg.Storage.Bucket), zap.String("key", key))
		return nil
	},
}

func parseDocumentID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func parseKindAndDocument(rawKind, rawID string) (models.Kind, uint64, error) {
	kind, ok := models.ParseKind(rawKind)
	if !ok {
		return "", 0, fmt.Errorf("%w: %q (use invoice or cost)", lineitems.ErrUnknownKind, rawKind)
	}
	id, err := parseDocumentID(rawID)
	if err != nil {
		return "", 0, err
	}
	return kind, id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPlanReport logs the plan summary of a save.
func printPlanReport(l *zap.Logger, result *lineitems.SaveResult) {
	s := result.Plan.Summary
	l.Info("Reconciliation report",
		zap.String("kind", string(result.Kind)),
		zap.Uint64("document_id", result.DocumentID),
		zap.Bool("dry_run", result.DryRun),
		zap.Int("submitted", s.Submitted),
		zap.Int("persisted", s.Persisted),
		zap.Int("inserts", s.Inserts),
		zap.Int("updates", s.Updates),
		zap.Int("skipped_blank", s.SkippedBlank),
		zap.Int("skipped_unknown", s.SkippedUnknown),
		zap.Int("deletes", s.Deletes),
		zap.String("delete_mode", string(s.DeleteMode)),
	)
}

// confirmDestructiveAction asks for an explicit "yes".
func confirmDestructiveAction(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "This permanently deletes every item of the document. Type 'yes' to continue: ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

func init() {
	itemsSaveCmd.Flags().StringVarP(&itemsFile, "file", "f", "", "JSON file with the submitted items (default stdin)")
	itemsSaveCmd.Flags().BoolVar(&itemsDryRun, "dry-run", false, "Print the plan without writing")
	itemsTeardownCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Skip the confirmation prompt")

	itemsCmd.AddCommand(itemsListCmd, itemsSaveCmd, itemsPatchCmd, itemsReorderCmd,
		itemsSeedCmd, itemsTeardownCmd, itemsDeleteCmd, itemsSummaryCmd, itemsExportCmd)
	RootCmd.AddCommand(itemsCmd)
}
