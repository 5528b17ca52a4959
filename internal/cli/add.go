package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/azlabs/tanit/internal/model"
	"github.com/azlabs/tanit/internal/pipeline"
	"github.com/azlabs/tanit/internal/store"
)

var (
	addURL     string
	addTitle   string
	addSource  string
	addProcess bool
)

var addCmd = &cobra.Command{
	Use:   "add <text-file>",
	Short: "Add an article to the database",
	Long: `Add stores a new article in the source collection. With --process
the article is tagged and resolved immediately and the result written
to the target collection.

Example:
  tanit add article.txt --title "Sammit keçirildi" --url https://news.example.az/sammit
  tanit add article.txt --title "Sammit keçirildi" --process`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addURL, "url", "", "article URL")
	addCmd.Flags().StringVar(&addTitle, "title", "", "article title")
	addCmd.Flags().StringVar(&addSource, "source", "", "source name")
	addCmd.Flags().BoolVar(&addProcess, "process", false, "extract entities immediately")

	_ = addCmd.MarkFlagRequired("title")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read article text: %w", err)
	}

	article := model.Article{
		Source:    addSource,
		URL:       addURL,
		Title:     addTitle,
		Text:      string(data),
		ParseDate: time.Now().UTC(),
	}

	st, err := store.NewMongoStore(ctx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("connect to store: %w", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	id, err := st.InsertArticle(ctx, article)
	if err != nil {
		return err
	}
	article.ID = id

	fmt.Printf("added article %s\n", id)

	if !addProcess {
		return nil
	}

	if err := applyTaggerFlags(cfg); err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	pa, err := p.ProcessArticle(ctx, article)
	if err != nil {
		return fmt.Errorf("process article: %w", err)
	}

	if err := st.InsertProcessedBatch(ctx, []model.ProcessedArticle{*pa}); err != nil {
		return err
	}

	fmt.Printf("processed: %d persons, %d organisations, %d locations\n",
		len(pa.Entities.Persons), len(pa.Entities.Organisations), len(pa.Entities.Locations))

	return nil
}
