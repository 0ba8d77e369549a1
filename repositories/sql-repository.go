package repositories

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"viukon-cms/models"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var _ SiteDataRepository = (*SQLRepository)(nil)

// SQLRepository stores the document relationally: projects and team members
// in their own tables ordered by position, everything else as JSON columns
// of a single site_settings row.
type SQLRepository struct {
	dbConn *sqlx.DB
}

type dbSettings struct {
	Hero          jsonColumn[models.Hero]    `db:"hero"`
	Contact       jsonColumn[models.Contact] `db:"contact"`
	TrustedBrands jsonColumn[[]string]       `db:"trusted_brands"`
	Stats         jsonColumn[models.Stats]   `db:"stats"`
	About         jsonColumn[models.About]   `db:"about"`
}

type dbProject struct {
	ID          string               `db:"id"`
	Position    int                  `db:"position"`
	Title       string               `db:"title"`
	Category    string               `db:"category"`
	Description string               `db:"description"`
	Img         string               `db:"img"`
	Tags        jsonColumn[[]string] `db:"tags"`
	Link        string               `db:"link"`
	Featured    bool                 `db:"featured"`
}

type dbTeamMember struct {
	ID       string `db:"id"`
	Position int    `db:"position"`
	Name     string `db:"name"`
	Role     string `db:"role"`
	Img      string `db:"img"`
}

func toDomainProject(p *dbProject) models.Project {
	return models.Project{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Img:         p.Img,
		Tags:        p.Tags.V,
		Link:        p.Link,
		Featured:    p.Featured,
	}
}

func toDomainTeamMember(m *dbTeamMember) models.TeamMember {
	return models.TeamMember{
		ID:   m.ID,
		Name: m.Name,
		Role: m.Role,
		Img:  m.Img,
	}
}

// OpenSQLite opens (or creates) the SQLite database at path and applies all
// pending migrations.
func OpenSQLite(path string, maxOpenConns int) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to db : %w", err)
	}

	if maxOpenConns < 1 {
		maxOpenConns = 1
	}
	db.SetMaxOpenConns(maxOpenConns)

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting dialect for migrations : %w", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migration : %w", err)
	}
	return db, nil
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{dbConn: db}
}

func (repo *SQLRepository) Get(ctx context.Context) (*models.SiteData, error) {
	tx, err := repo.dbConn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning read transaction: %w", err)
	}
	defer tx.Rollback()

	var settings dbSettings
	err = tx.GetContext(ctx, &settings, `SELECT hero, contact, trusted_brands, stats, about FROM site_settings WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting site settings: %w", err)
	}

	var dbProjects []*dbProject
	err = tx.SelectContext(ctx, &dbProjects, `SELECT id, position, title, category, description, img, tags, link, featured FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("getting projects: %w", err)
	}

	var dbTeam []*dbTeamMember
	err = tx.SelectContext(ctx, &dbTeam, `SELECT id, position, name, role, img FROM team_members ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("getting team members: %w", err)
	}

	doc := &models.SiteData{
		Hero:          settings.Hero.V,
		Projects:      make([]models.Project, len(dbProjects)),
		Team:          make([]models.TeamMember, len(dbTeam)),
		Contact:       settings.Contact.V,
		TrustedBrands: settings.TrustedBrands.V,
		Stats:         settings.Stats.V,
		About:         settings.About.V,
	}
	for i, p := range dbProjects {
		doc.Projects[i] = toDomainProject(p)
	}
	for i, m := range dbTeam {
		doc.Team[i] = toDomainTeamMember(m)
	}
	doc.Normalize()
	return doc, nil
}

func (repo *SQLRepository) Create(ctx context.Context, doc *models.SiteData) error {
	return repo.inTx(ctx, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM site_settings`); err != nil {
			return fmt.Errorf("checking for site settings: %w", err)
		}
		if count > 0 {
			return ErrAlreadyExists
		}
		return writeDocument(ctx, tx, doc)
	})
}

// Replace rewrites both child tables and the settings row in one transaction.
// Any failure rolls the whole write back.
func (repo *SQLRepository) Replace(ctx context.Context, doc *models.SiteData) error {
	return repo.inTx(ctx, func(tx *sqlx.Tx) error {
		return writeDocument(ctx, tx, doc)
	})
}

func (repo *SQLRepository) Ping(ctx context.Context) error {
	return repo.dbConn.PingContext(ctx)
}

func (repo *SQLRepository) Close(ctx context.Context) error {
	if err := repo.dbConn.Close(); err != nil {
		return fmt.Errorf("closing repo : %w", err)
	}
	return nil
}

func (repo *SQLRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := repo.dbConn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func writeDocument(ctx context.Context, tx *sqlx.Tx, doc *models.SiteData) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clearing projects: %w", err)
	}
	for i, p := range doc.Projects {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, position, title, category, description, img, tags, link, featured) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Title, p.Category, p.Description, p.Img, jsonColumn[[]string]{V: p.Tags}, p.Link, p.Featured,
		)
		if err != nil {
			return fmt.Errorf("inserting project %s: %w", p.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM team_members`); err != nil {
		return fmt.Errorf("clearing team members: %w", err)
	}
	for i, m := range doc.Team {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO team_members (id, position, name, role, img) VALUES (?, ?, ?, ?, ?)`,
			m.ID, i, m.Name, m.Role, m.Img,
		)
		if err != nil {
			return fmt.Errorf("inserting team member %s: %w", m.ID, err)
		}
	}

	query := `INSERT INTO site_settings (id, hero, contact, trusted_brands, stats, about) VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			hero = excluded.hero,
			contact = excluded.contact,
			trusted_brands = excluded.trusted_brands,
			stats = excluded.stats,
			about = excluded.about`
	_, err := tx.ExecContext(ctx, query,
		jsonColumn[models.Hero]{V: doc.Hero},
		jsonColumn[models.Contact]{V: doc.Contact},
		jsonColumn[[]string]{V: doc.TrustedBrands},
		jsonColumn[models.Stats]{V: doc.Stats},
		jsonColumn[models.About]{V: doc.About},
	)
	if err != nil {
		return fmt.Errorf("updating site settings: %w", err)
	}
	return nil
}
