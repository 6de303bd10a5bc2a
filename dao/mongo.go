package dao

import (
	"context"
	"errors"
	"time"

	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adilrabid/ppcp-checkout-api/models"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no
	// database connection, so the service must crash here as it cannot do its work.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. Failure at this point means
	// the configuration is wrong rather than a transient outage.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb instance"))
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// NewGetMongoDatabase returns a handle on the configured database.
func NewGetMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is a MongoDB implementation of the DAO. Collection names come
// from config so environments can segregate data without code changes.
type MongoService struct {
	db                  MongoDatabaseInterface
	ProductsCollection  string
	CustomersCollection string
	SalesCollection     string
	CacheCollection     string
}

// NewMongoService constructs the DAO over the given database handle.
func NewMongoService(db MongoDatabaseInterface, products, customers, sales, cache string) *MongoService {
	return &MongoService{
		db:                  db,
		ProductsCollection:  products,
		CustomersCollection: customers,
		SalesCollection:     sales,
		CacheCollection:     cache,
	}
}

// GetProduct fetches a catalog row from the products collection.
// If the product is not found, return nil.
func (m *MongoService) GetProduct(id string) (*models.ProductDB, error) {
	var product models.ProductDB
	collection := m.db.Collection(m.ProductsCollection)

	err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

// SavePlanMetadata records a product's billing plan id and creation mode.
func (m *MongoService) SavePlanMetadata(productID, planID, planMode string) error {
	collection := m.db.Collection(m.ProductsCollection)

	update := bson.M{"$set": bson.M{
		"pp_subscription_plan_id":   planID,
		"pp_subscription_plan_mode": planMode,
	}}
	_, err := collection.UpdateOne(context.Background(), bson.M{"_id": productID}, update)

	return err
}

// ResetPlanMetadata clears a product's billing plan id and mode.
func (m *MongoService) ResetPlanMetadata(productID string) error {
	return m.SavePlanMetadata(productID, "", "")
}

// CreateCustomerSale inserts one customer/sale ledger row.
func (m *MongoService) CreateCustomerSale(sale *models.CustomerSaleDB) error {
	collection := m.db.Collection(m.CustomersCollection)
	_, err := collection.InsertOne(context.Background(), sale)

	return err
}

// CreateSaleStat inserts one sales stats ledger row.
func (m *MongoService) CreateSaleStat(stat *models.SaleStatDB) error {
	collection := m.db.Collection(m.SalesCollection)
	_, err := collection.InsertOne(context.Background(), stat)

	return err
}

// TransactionProcessed reports whether a ledger row already exists for the
// transaction. Matching is on txn_id when present, falling back to the PayPal
// order id for records captured before a transaction id was known.
func (m *MongoService) TransactionProcessed(txnID, payerEmail, orderID string) (bool, error) {
	collection := m.db.Collection(m.CustomersCollection)

	var filter bson.M
	switch {
	case txnID != "":
		filter = bson.M{"txn_id": txnID}
	case orderID != "":
		filter = bson.M{"paypal_order_id": orderID}
	default:
		return false, errors.New("no transaction identifiers supplied for duplicate check")
	}
	if payerEmail != "" {
		filter = bson.M{"$or": []bson.M{filter, {"txn_id": txnID, "email_address": payerEmail}}}
	}

	count, err := collection.CountDocuments(context.Background(), filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// PutCheckoutSnapshot upserts a snapshot keyed by PayPal order/subscription id.
func (m *MongoService) PutCheckoutSnapshot(snapshot *models.CheckoutSnapshotDB) error {
	collection := m.db.Collection(m.CacheCollection)

	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(context.Background(), bson.M{"_id": snapshot.ID}, snapshot, opts)

	return err
}

// GetCheckoutSnapshot fetches a snapshot by id. Expired snapshots are treated
// as missing; removal of the document itself is left to the collection's TTL
// index.
func (m *MongoService) GetCheckoutSnapshot(id string) (*models.CheckoutSnapshotDB, error) {
	var snapshot models.CheckoutSnapshotDB
	collection := m.db.Collection(m.CacheCollection)

	err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&snapshot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	if time.Now().After(snapshot.ExpiresAt) {
		return nil, nil
	}

	return &snapshot, nil
}
