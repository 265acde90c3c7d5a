// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent;
collections are independent, so they are ensured concurrently and any
failure aborts startup.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, e := range []struct {
		name string
		fn   func(context.Context, *mongo.Database) error
	}{
		{"accounts", ensureAccounts},
		{"challenges", ensureChallenges},
		{"solutions", ensureSolutions},
		{"problems", ensureProblems},
		{"capstone_projects", ensureCapstones},
		{"ideas", ensureIdeas},
		{"blog_posts", ensureBlogPosts},
		{"comments", ensureComments},
		{"programs", ensurePrograms},
		{"partner_applications", ensurePartnerApplications},
		{"contact_messages", ensureContactMessages},
		{"courses", ensureCourses},
		{"enrollments", ensureEnrollments},
		{"audit_events", ensureAuditEvents},
	} {
		e := e
		g.Go(func() error {
			if err := e.fn(ctx, db); err != nil {
				return fmt.Errorf("%s: %w", e.name, err)
			}
			return nil
		})
	}

	return g.Wait()
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameUnique(a, b *bool) bool {
	av, bv := false, false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	existing := map[string]existingIndex{} // key signature -> index
	cur, err := coll.Indexes().List(ctx)
	if err == nil {
		for cur.Next(ctx) {
			var idx existingIndex
			if err := cur.Decode(&idx); err != nil {
				continue
			}
			existing[keySig(idx.Key)] = idx
		}
		cur.Close(ctx)
	}

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		sig := keySig(m.Keys.(bson.D))

		if ex, ok := existing[sig]; ok {
			if sameUnique(desiredUnique, ex.Unique) {
				zap.L().Debug("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", sig))
				continue
			}
			// Options mismatch (e.g., upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", sig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

// createdDesc is the newest-first listing index every collection carries.
func createdDesc(name string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_" + name + "_created_desc"),
	}
}

func ensureAccounts(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("accounts"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_accounts_email_ci"),
		},
		createdDesc("accounts"),
	})
}

func ensureChallenges(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("challenges"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_challenges_title_ci"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_challenges_status_created"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "deadline", Value: 1},
			},
			Options: options.Index().SetName("idx_challenges_status_deadline"),
		},
	})
}

func ensureSolutions(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("solutions"), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_solutions_status_created"),
		},
		{
			Keys:    bson.D{{Key: "challenge_id", Value: 1}},
			Options: options.Index().SetName("idx_solutions_challenge"),
		},
	})
}

func ensureProblems(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("problems"), []mongo.IndexModel{
		createdDesc("problems"),
	})
}

func ensureCapstones(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("capstone_projects"), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_capstones_status_created"),
		},
	})
}

func ensureIdeas(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("ideas"), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_ideas_status_created"),
		},
	})
}

func ensureBlogPosts(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("blog_posts"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_blog_posts_title_ci"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_blog_posts_status_created"),
		},
	})
}

func ensureComments(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("comments"), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "post_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_comments_post_created"),
		},
	})
}

func ensurePrograms(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("programs"), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_programs_status_created"),
		},
	})
}

func ensurePartnerApplications(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("partner_applications"), []mongo.IndexModel{
		createdDesc("partner_applications"),
	})
}

func ensureContactMessages(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("contact_messages"), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_contact_messages_status_created"),
		},
	})
}

func ensureCourses(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("courses"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_courses_title_ci"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_courses_status_created"),
		},
	})
}

func ensureEnrollments(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("enrollments"), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "course_id", Value: 1},
				{Key: "account_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_enrollments_course_account"),
		},
		{
			Keys:    bson.D{{Key: "account_id", Value: 1}},
			Options: options.Index().SetName("idx_enrollments_account"),
		},
	})
}

func ensureAuditEvents(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("audit_events"), []mongo.IndexModel{
		createdDesc("audit_events"),
	})
}
