package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/btxcapital/site/internal/client/api"
	"github.com/btxcapital/site/internal/client/models"
	"github.com/btxcapital/site/internal/client/services"
)

// getConfirmation and readDraftFile are indirections used to facilitate
// testing. They can be swapped in tests.
var getConfirmation = GetConfirmation
var readDraftFile = os.ReadFile

// News fetches the published article list and prints it. A result belonging
// to a fetch older than one already rendered is dropped silently.
func (a *App) News(ctx context.Context) error {
	fmt.Println("Loading news...")

	list, err := a.newsService.FetchAll(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if !a.applySeq(list.Seq) {
		return nil
	}

	if len(list.Articles) == 0 {
		fmt.Println("No articles yet.")
		return nil
	}

	for _, n := range list.Articles {
		marker := ""
		if n.IsPDF() {
			marker = " [PDF]"
		}
		fmt.Printf("#%d  %s%s\n", n.ID, n.Title, marker)
		fmt.Printf("    %s | %s | %s\n", n.Category, n.ReadTime, n.Date)
		if n.Excerpt != "" {
			fmt.Printf("    %s\n", n.Excerpt)
		}
	}
	return nil
}

// CreateArticle walks the article creation form. The draft starts empty every
// time the form opens; an empty title cancels the form and clears the draft
// without sending anything.
func (a *App) CreateArticle(ctx context.Context) error {
	a.draft.Reset()

	title, err := getSimpleText(a.reader, "Enter title (empty to cancel)", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		a.draft.Reset()
		fmt.Println("Cancelled.")
		return nil
	}
	a.draft.Title = title

	if a.draft.Excerpt, err = getSimpleText(a.reader, "Enter excerpt", os.Stdout); err != nil {
		return err
	}
	if a.draft.Category, err = getSimpleText(a.reader, "Enter category", os.Stdout); err != nil {
		return err
	}
	if a.draft.Content, err = GetMultiline(a.reader, "Enter content:", os.Stdout); err != nil {
		return err
	}

	pdfPath, err := getSimpleText(a.reader, "Enter PDF path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if pdfPath != "" {
		data, err := readDraftFile(pdfPath)
		if err != nil {
			log.Printf("error reading %s: %v", pdfPath, err)
			return err
		}
		a.draft.PDF = &models.DraftFile{Name: filepath.Base(pdfPath), Data: data}
	}

	created, err := a.newsService.Create(ctx, a.draft)
	if err != nil {
		fmt.Printf("%s: %s\n", services.NewsCreateFailureGeneric, api.ServerMessage(err))
		return err
	}

	a.draft.Reset()
	fmt.Println(services.NewsCreateSuccess)
	fmt.Printf("Created article #%d\n", created.ID)
	return nil
}

// DeleteArticle removes an article by ID. Deletion is irreversible, so the
// user must confirm first; a declined confirmation makes no request at all.
func (a *App) DeleteArticle(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Enter article id to delete", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Println("Invalid id:", idText)
		return err
	}

	ok, err := getConfirmation(a.reader, fmt.Sprintf("Delete article %d? This cannot be undone.", id), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	if err := a.newsService.Delete(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Article deleted.")
	return nil
}
