package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domorder "example.com/forever-shop/backend/internal/domain/order"
)

type lineItemDoc struct {
	ProductID string   `bson:"productId"`
	Name      string   `bson:"name"`
	Price     float64  `bson:"price"`
	Size      string   `bson:"size"`
	Quantity  int64    `bson:"quantity"`
	Image     []string `bson:"image"`
}

type addressDoc struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
	Email     string `bson:"email"`
	Street    string `bson:"street"`
	City      string `bson:"city"`
	State     string `bson:"state"`
	Zipcode   string `bson:"zipcode"`
	Country   string `bson:"country"`
	Phone     string `bson:"phone"`
}

type orderDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"userId"`
	Items         []lineItemDoc      `bson:"items"`
	Address       addressDoc         `bson:"address"`
	Amount        float64            `bson:"amount"`
	PaymentMethod string             `bson:"paymentMethod"`
	Payment       bool               `bson:"payment"`
	Status        string             `bson:"status"`
	Date          time.Time          `bson:"date"`
}

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection("orders")}
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) error {
	doc := orderToDoc(o)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domorder.ErrOrderNotFound
	}
	var doc orderDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domorder.ErrOrderNotFound
		}
		return nil, err
	}
	return docToOrder(&doc), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domorder.Order, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *OrderRepository) UpdatePayment(ctx context.Context, id string, paid bool) error {
	return r.update(ctx, id, bson.M{"payment": paid})
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id string, status domorder.Status) error {
	return r.update(ctx, id, bson.M{"payment": true, "status": string(status)})
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domorder.Status) error {
	return r.update(ctx, id, bson.M{"status": string(status)})
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domorder.ErrOrderNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domorder.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]*domorder.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*domorder.Order
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		orders = append(orders, docToOrder(&doc))
	}
	return orders, cursor.Err()
}

func (r *OrderRepository) update(ctx context.Context, id string, set bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domorder.ErrOrderNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domorder.ErrOrderNotFound
	}
	return nil
}

func orderToDoc(o *domorder.Order) *orderDoc {
	items := make([]lineItemDoc, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, lineItemDoc{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}
	return &orderDoc{
		UserID:        o.UserID,
		Items:         items,
		Address:       addressDoc(o.Address),
		Amount:        o.Amount,
		PaymentMethod: string(o.PaymentMethod),
		Payment:       o.Payment,
		Status:        string(o.Status),
		Date:          o.Date,
	}
}

func docToOrder(doc *orderDoc) *domorder.Order {
	items := make([]domorder.LineItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, domorder.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}
	return &domorder.Order{
		ID:            doc.ID.Hex(),
		UserID:        doc.UserID,
		Items:         items,
		Address:       domorder.Address(doc.Address),
		Amount:        doc.Amount,
		PaymentMethod: domorder.PaymentMethod(doc.PaymentMethod),
		Payment:       doc.Payment,
		Status:        domorder.Status(doc.Status),
		Date:          doc.Date,
	}
}
