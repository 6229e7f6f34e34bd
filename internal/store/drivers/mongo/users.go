package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/tripmates/userd/internal/domain"
	"github.com/tripmates/userd/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDoc is the BSON shape of a user record. The ULID string is the
// document id, so the natural index order is chronological.
type userDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	GroupTag     string    `bson:"grouptag"`
	PhotoURL     string    `bson:"photoURL"`
	Role         string    `bson:"role"`
	Active       bool      `bson:"active"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type usersRepo struct {
	coll *mongo.Collection
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(doc), nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(doc), nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()

	role := u.Role
	if role == "" {
		role = domain.DefaultRole
	}

	doc := userDoc{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		GroupTag:     u.GroupTag,
		PhotoURL:     u.PhotoURL,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id string, update store.ProfileUpdate) (domain.User, error) {
	set := bson.M{
		"name":       update.Name,
		"grouptag":   update.GroupTag,
		"updated_at": time.Now().UTC(),
	}
	// Omitted photoURL keeps the stored value; explicit empty overwrites.
	if update.PhotoURL != nil {
		set["photoURL"] = *update.PhotoURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(doc), nil
}

func (r *usersRepo) UpdateStatus(ctx context.Context, id string, role string, active bool) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"role":       role,
		"active":     active,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) List(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]domain.User, len(docs))
	for i, doc := range docs {
		users[i] = mapUser(doc)
	}
	return users, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapUser(doc userDoc) domain.User {
	return domain.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		GroupTag:     doc.GroupTag,
		PhotoURL:     doc.PhotoURL,
		Role:         doc.Role,
		Active:       doc.Active,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
