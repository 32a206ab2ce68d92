package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domcart "example.com/forever-shop/backend/internal/domain/cart"
	domuser "example.com/forever-shop/backend/internal/domain/user"
)

type userDoc struct {
	ID        primitive.ObjectID          `bson:"_id,omitempty"`
	Name      string                      `bson:"name"`
	Email     string                      `bson:"email"`
	Password  string                      `bson:"password"`
	CartData  map[string]map[string]int64 `bson:"cartData"`
	CreatedAt time.Time                   `bson:"createdAt"`
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

// EnsureIndexes creates the unique email index; duplicate registrations
// surface as ErrEmailAlreadyUsed.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) error {
	doc := userDoc{
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		CartData:  u.Cart,
		CreatedAt: time.Now(),
	}
	if doc.CartData == nil {
		doc.CartData = map[string]map[string]int64{}
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domuser.ErrEmailAlreadyUsed
		}
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID).Hex()
	u.CreatedAt = doc.CreatedAt
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domuser.ErrUserNotFound
		}
		return nil, err
	}
	return docToUser(&doc), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domuser.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domuser.ErrUserNotFound
	}
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domuser.ErrUserNotFound
		}
		return nil, err
	}
	return docToUser(&doc), nil
}

// Get implements cart.Repository on top of the embedded cartData map.
func (r *UserRepository) Get(ctx context.Context, userID string) (domcart.Cart, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Cart, nil
}

// Save replaces the whole cart mapping on the user document. Last writer
// wins; there is no optimistic concurrency control.
func (r *UserRepository) Save(ctx context.Context, userID string, c domcart.Cart) error {
	return r.setCart(ctx, userID, c)
}

// Clear resets the cart to an empty mapping. Safe to replay.
func (r *UserRepository) Clear(ctx context.Context, userID string) error {
	return r.setCart(ctx, userID, domcart.New())
}

func (r *UserRepository) setCart(ctx context.Context, userID string, c domcart.Cart) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domuser.ErrUserNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"cartData": c}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domuser.ErrUserNotFound
	}
	return nil
}

func docToUser(doc *userDoc) *domuser.User {
	c := domcart.Cart(doc.CartData)
	if c == nil {
		c = domcart.New()
	}
	return &domuser.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		Cart:         c,
		CreatedAt:    doc.CreatedAt,
	}
}
