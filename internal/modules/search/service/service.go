package service

import (
	"encoding/json"
	"html"
	"log"
	"os"
	"strings"
	"time"

	"brik.community/portal/internal/entity"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const (
	IndexAnnouncements = "announcements"
	IndexOpportunities = "opportunities"
)

type SearchService interface {
	IndexAnnouncement(a *entity.Announcement) error
	DeleteAnnouncement(id string) error
	IndexOpportunity(o *entity.Opportunity) error
	DeleteOpportunity(id string) error
	SearchAnnouncementIDs(query string, limit int) ([]string, error)
	SearchOpportunityIDs(query string, limit int) ([]string, error)
	GenerateSearchToken() (string, error)
}

type searchService struct {
	client        meilisearch.ServiceManager
	signingKeyUID string
	signingKey    string
	sanitizer     *bluemonday.Policy
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	if os.Getenv("MEILI_MASTER_KEY") == "" {
		log.Println("WARNING: MEILI_MASTER_KEY is not set.")
	}

	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	s.initSigningKey()
	return s
}

func (s *searchService) initIndexes() {
	sortable := []string{"created_at"}
	for _, index := range []string{IndexAnnouncements, IndexOpportunities} {
		if _, err := s.client.Index(index).UpdateSortableAttributes(&sortable); err != nil {
			log.Printf("Failed to update %s sortable attributes: %v", index, err)
		}
	}
	log.Println("Meilisearch indexes initialized")
}

func (s *searchService) initSigningKey() {
	resp, err := s.client.GetKeys(&meilisearch.KeysQuery{Limit: 20})
	if err != nil {
		log.Printf("Failed to get meilisearch keys: %v", err)
		return
	}

	for _, key := range resp.Results {
		if key.Name == "TenantTokenSigner" {
			s.signingKeyUID = key.UID
			s.signingKey = key.Key
			return
		}
	}

	key, err := s.client.CreateKey(&meilisearch.Key{
		Description: "Key to sign tenant tokens",
		Name:        "TenantTokenSigner",
		Actions:     []string{"search"},
		Indexes:     []string{IndexAnnouncements, IndexOpportunities},
		ExpiresAt:   time.Now().AddDate(100, 0, 0),
	})
	if err != nil {
		log.Printf("Failed to create signing key: %v", err)
		return
	}

	s.signingKeyUID = key.UID
	s.signingKey = key.Key
}

type announcementDoc struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

type opportunityDoc struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	Organization string `json:"organization"`
	CreatedAt    int64  `json:"created_at"`
}

// cleanContentForIndex strips markup before indexing so search hits match
// visible text only.
func (s *searchService) cleanContentForIndex(content string) string {
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	cleanText := html.UnescapeString(s.sanitizer.Sanitize(content))
	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *searchService) IndexAnnouncement(a *entity.Announcement) error {
	doc := announcementDoc{
		ID:        a.ID.String(),
		Title:     a.Title,
		Content:   s.cleanContentForIndex(a.Content),
		CreatedAt: a.CreatedAt.Unix(),
	}

	_, err := s.client.Index(IndexAnnouncements).AddDocuments([]announcementDoc{doc}, strPtr("id"))
	return err
}

func (s *searchService) DeleteAnnouncement(id string) error {
	_, err := s.client.Index(IndexAnnouncements).DeleteDocument(id)
	return err
}

func (s *searchService) IndexOpportunity(o *entity.Opportunity) error {
	doc := opportunityDoc{
		ID:           o.ID.String(),
		Title:        o.Title,
		Description:  s.cleanContentForIndex(o.Description),
		Type:         o.Type,
		Organization: o.Organization,
		CreatedAt:    o.CreatedAt.Unix(),
	}

	_, err := s.client.Index(IndexOpportunities).AddDocuments([]opportunityDoc{doc}, strPtr("id"))
	return err
}

func (s *searchService) DeleteOpportunity(id string) error {
	_, err := s.client.Index(IndexOpportunities).DeleteDocument(id)
	return err
}

func (s *searchService) SearchAnnouncementIDs(query string, limit int) ([]string, error) {
	return s.searchIDs(IndexAnnouncements, query, limit)
}

func (s *searchService) SearchOpportunityIDs(query string, limit int) ([]string, error) {
	return s.searchIDs(IndexOpportunities, query, limit)
}

func (s *searchService) searchIDs(index, query string, limit int) ([]string, error) {
	resp, err := s.client.Index(index).Search(query, &meilisearch.SearchRequest{
		Limit:                int64(limit),
		AttributesToRetrieve: []string{"id"},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		raw, ok := hit["id"]
		if !ok {
			continue
		}
		var id string
		if err := json.Unmarshal(raw, &id); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// GenerateSearchToken signs a read-only tenant token the client can use to
// query Meilisearch directly.
func (s *searchService) GenerateSearchToken() (string, error) {
	searchRules := map[string]interface{}{
		IndexAnnouncements: map[string]interface{}{},
		IndexOpportunities: map[string]interface{}{},
	}

	expiry := time.Now().Add(24 * time.Hour)
	return s.client.GenerateTenantToken(s.signingKeyUID, searchRules, &meilisearch.TenantTokenOptions{
		APIKey:    s.signingKey,
		ExpiresAt: expiry,
	})
}

func strPtr(s string) *string {
	return &s
}
