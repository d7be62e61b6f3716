package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/recruitment/pkg/auth"
	"github.com/artem13815/recruitment/pkg/joboffer"
	pgrepo "github.com/artem13815/recruitment/pkg/repository/postgres"
	"github.com/artem13815/recruitment/pkg/skill"
)

var seedCmd = &cobra.Command{
	Use:   "seed-demo",
	Short: "Seed demo skills and job offers (idempotent)",
	Long:  "Ensures a seed HR manager, the Technical category, five skills and five open job offers exist. Existing rows are matched by email, name and title.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	pool, log, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer pool.Close()
	defer func() { _ = log.Sync() }()

	users := pgrepo.NewUserRepository(pool)
	skills := skill.NewService(pgrepo.NewSkillRepository(pool))
	s := &seeder{
		users:    users,
		accounts: auth.NewAuthService(users, nil),
		skills:   skills,
		offers:   joboffer.NewService(pgrepo.NewJobOfferRepository(pool)),
		out:      cmd.OutOrStdout(),
		now:      time.Now,
	}
	return s.run(cmd.Context(), envOr("SEED_HR_EMAIL", "seed.hr@example.com"), envOr("SEED_HR_PASSWORD", "HrManager123"))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type demoSkill struct {
	name, description string
}

type demoRequirement struct {
	skill    string
	level    skill.Level
	required bool
}

type demoOffer struct {
	title, location, description string
	closesIn                     int // days
	requirements                 []demoRequirement
}

const demoCategory = "Technical"

var demoSkills = []demoSkill{
	{"PHP", "Server-side development with PHP 8+"},
	{"Symfony", "Symfony framework (controllers, forms, security)"},
	{"Doctrine ORM", "Entity mapping and database access with Doctrine"},
	{"SQL", "Writing queries and understanding relational models"},
	{"Docker", "Containerized development and deployment basics"},
}

var demoOffers = []demoOffer{
	{
		title:       "Symfony Backend Developer",
		location:    "Casablanca",
		description: "Build and maintain Symfony APIs and back-office features. Focus on clean architecture and testing.",
		closesIn:    30,
		requirements: []demoRequirement{
			{"Symfony", skill.LevelAdvanced, true},
			{"Doctrine ORM", skill.LevelIntermediate, true},
			{"SQL", skill.LevelIntermediate, false},
		},
	},
	{
		title:       "PHP Developer (Internal Tools)",
		location:    "Rabat",
		description: "Develop internal HR tools in PHP. Work closely with HR stakeholders and iterate quickly.",
		closesIn:    21,
		requirements: []demoRequirement{
			{"PHP", skill.LevelAdvanced, true},
			{"SQL", skill.LevelIntermediate, true},
		},
	},
	{
		title:       "DevOps-minded Web Developer",
		location:    "Remote",
		description: "Support the team with developer experience improvements and Docker-based environments.",
		closesIn:    45,
		requirements: []demoRequirement{
			{"Docker", skill.LevelIntermediate, true},
			{"PHP", skill.LevelIntermediate, false},
		},
	},
	{
		title:       "Full Stack Symfony Developer",
		location:    "Marrakech",
		description: "Work on Symfony + Twig UI features, forms, validation, and integrations with backend services.",
		closesIn:    28,
		requirements: []demoRequirement{
			{"Symfony", skill.LevelIntermediate, true},
			{"PHP", skill.LevelAdvanced, true},
		},
	},
	{
		title:       "Database-focused Backend Engineer",
		location:    "Tangier",
		description: "Improve database queries and performance, and support Doctrine mappings and migrations.",
		closesIn:    35,
		requirements: []demoRequirement{
			{"SQL", skill.LevelAdvanced, true},
			{"Doctrine ORM", skill.LevelAdvanced, true},
		},
	},
}

type seeder struct {
	users    auth.UserRepository
	accounts auth.AuthUseCase
	skills   skill.UseCase
	offers   joboffer.UseCase
	out      io.Writer
	now      func() time.Time
}

func (s *seeder) run(ctx context.Context, email, password string) error {
	owner, err := s.owner(ctx, email, password)
	if err != nil {
		return err
	}
	category, err := s.category(ctx)
	if err != nil {
		return err
	}
	byName, err := s.seedSkills(ctx, category)
	if err != nil {
		return err
	}
	if err := s.seedOffers(ctx, owner, byName); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Done.")
	return nil
}

func (s *seeder) owner(ctx context.Context, email, password string) (auth.Actor, error) {
	if u, err := s.users.GetByEmail(ctx, strings.ToLower(email)); err == nil {
		fmt.Fprintf(s.out, "Using existing creator user: %s\n", u.Email)
		return auth.Actor{ID: u.ID, Role: u.Role}, nil
	}
	u, err := s.accounts.CreateUser(ctx, email, password, auth.RoleHRManager)
	if err != nil {
		return auth.Actor{}, fmt.Errorf("create seed user: %w", err)
	}
	fmt.Fprintf(s.out, "Created seed creator user: %s\n", u.Email)
	return auth.Actor{ID: u.ID, Role: u.Role}, nil
}

func (s *seeder) category(ctx context.Context) (skill.Category, error) {
	cats, err := s.skills.ListCategories(ctx)
	if err != nil {
		return skill.Category{}, err
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, demoCategory) {
			fmt.Fprintf(s.out, "Using existing skill category: %s\n", c.Name)
			return c, nil
		}
	}
	c, err := s.skills.CreateCategory(ctx, demoCategory, "Technical skills for job offers and profiles")
	if err != nil {
		return skill.Category{}, err
	}
	fmt.Fprintf(s.out, "Created skill category: %s\n", c.Name)
	return c, nil
}

func (s *seeder) seedSkills(ctx context.Context, category skill.Category) (map[string]skill.Skill, error) {
	names := make([]string, 0, len(demoSkills))
	for _, d := range demoSkills {
		names = append(names, d.name)
	}
	existing, err := s.skills.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]skill.Skill, len(demoSkills))
	for _, sk := range existing {
		byName[strings.ToLower(sk.Name)] = sk
	}

	created := 0
	for _, d := range demoSkills {
		if _, ok := byName[strings.ToLower(d.name)]; ok {
			continue
		}
		sk, err := s.skills.Create(ctx, skill.Skill{Name: d.name, Description: d.description, CategoryID: category.ID})
		if err != nil {
			return nil, err
		}
		byName[strings.ToLower(sk.Name)] = sk
		created++
	}
	fmt.Fprintf(s.out, "Skills: created %d / %d\n", created, len(demoSkills))
	return byName, nil
}

func (s *seeder) seedOffers(ctx context.Context, owner auth.Actor, skills map[string]skill.Skill) error {
	titles, err := s.existingTitles(ctx, owner)
	if err != nil {
		return err
	}
	created := 0
	for _, d := range demoOffers {
		if _, ok := titles[d.title]; ok {
			continue
		}
		reqs := make([]joboffer.Requirement, 0, len(d.requirements))
		for _, r := range d.requirements {
			sk, ok := skills[strings.ToLower(r.skill)]
			if !ok {
				return fmt.Errorf("offer %q: skill %q was not seeded", d.title, r.skill)
			}
			reqs = append(reqs, joboffer.Requirement{SkillID: sk.ID, SkillName: sk.Name, RequiredLevel: r.level, Required: r.required})
		}
		closing := s.now().AddDate(0, 0, d.closesIn)
		if _, err := s.offers.Create(ctx, owner, joboffer.JobOffer{
			Title:        d.title,
			Description:  d.description,
			Location:     d.location,
			Status:       joboffer.StatusOpen,
			ClosingDate:  &closing,
			Requirements: reqs,
		}); err != nil {
			return err
		}
		created++
	}
	fmt.Fprintf(s.out, "Job offers: created %d / %d\n", created, len(demoOffers))
	return nil
}

func (s *seeder) existingTitles(ctx context.Context, owner auth.Actor) (map[string]struct{}, error) {
	const page = 200
	titles := map[string]struct{}{}
	for offset := 0; ; offset += page {
		batch, err := s.offers.List(ctx, owner, page, offset)
		if err != nil {
			return nil, err
		}
		for _, o := range batch {
			titles[o.Title] = struct{}{}
		}
		if len(batch) < page {
			return titles, nil
		}
	}
}
