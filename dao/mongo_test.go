package dao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/adilrabid/ppcp-checkout-api/models"
)

func setDriverUp() (MongoService, mtest.CommandError, *mtest.Options) {
	client = &mongo.Client{}
	dataBase := NewGetMongoDatabase("mongoDBURL", "databaseName")

	mongoService := MongoService{
		db:                  dataBase,
		ProductsCollection:  "products",
		CustomersCollection: "customers",
		SalesCollection:     "sales",
		CacheCollection:     "checkout_cache",
	}

	commandError := mtest.CommandError{
		Code:    1,
		Message: "Message",
		Name:    "Name",
		Labels:  []string{"label1"},
	}

	opts := mtest.NewOptions().DatabaseName("databaseName").ClientType(mtest.Mock)

	return mongoService, commandError, opts
}

func TestUnitGetProductDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("GetProduct returns a catalog row", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "databaseName.products", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "prod-1"},
			{Key: "name", Value: "Widget"},
			{Key: "price", Value: "3.00"},
			{Key: "digital", Value: true},
		}))

		mongoService.db = mt.DB

		product, err := mongoService.GetProduct("prod-1")

		assert.Nil(t, err)
		assert.Equal(t, "Widget", product.Name)
		assert.True(t, product.Digital)
	})

	mt.Run("GetProduct returns nil for a missing product", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "databaseName.products", mtest.FirstBatch))

		mongoService.db = mt.DB

		product, err := mongoService.GetProduct("missing")

		assert.Nil(t, err)
		assert.Nil(t, product)
	})

	mt.Run("GetProduct runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		_, err := mongoService.GetProduct("prod-1")

		assert.NotNil(t, err)
	})
}

func TestUnitSavePlanMetadataDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("SavePlanMetadata runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.SavePlanMetadata("prod-1", "PLAN1", "sandbox")

		assert.Nil(t, err)
	})

	mt.Run("ResetPlanMetadata runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.ResetPlanMetadata("prod-1")

		assert.Nil(t, err)
	})

	mt.Run("SavePlanMetadata runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.SavePlanMetadata("prod-1", "PLAN1", "sandbox")

		assert.NotNil(t, err)
	})
}

func TestUnitCreateLedgerRowsDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("CreateCustomerSale runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.CreateCustomerSale(&models.CustomerSaleDB{TxnID: "CAP1"})

		assert.Nil(t, err)
	})

	mt.Run("CreateCustomerSale runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.CreateCustomerSale(&models.CustomerSaleDB{TxnID: "CAP1"})

		assert.NotNil(t, err)
	})

	mt.Run("CreateSaleStat runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.CreateSaleStat(&models.SaleStatDB{CustEmail: "jane.doe@example.com"})

		assert.Nil(t, err)
	})
}

func TestUnitTransactionProcessedDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("TransactionProcessed reports an existing row", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "databaseName.customers", mtest.FirstBatch, bson.D{
			{Key: "n", Value: 1},
		}))

		mongoService.db = mt.DB

		processed, err := mongoService.TransactionProcessed("CAP1", "jane.doe@example.com", "ORD1")

		assert.Nil(t, err)
		assert.True(t, processed)
	})

	mt.Run("TransactionProcessed reports a new transaction", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "databaseName.customers", mtest.FirstBatch))

		mongoService.db = mt.DB

		processed, err := mongoService.TransactionProcessed("CAP1", "", "")

		assert.Nil(t, err)
		assert.False(t, processed)
	})

	mt.Run("TransactionProcessed requires an identifier", func(mt *mtest.T) {
		mongoService.db = mt.DB

		_, err := mongoService.TransactionProcessed("", "jane.doe@example.com", "")

		assert.NotNil(t, err)
	})

	mt.Run("TransactionProcessed runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		_, err := mongoService.TransactionProcessed("CAP1", "", "ORD1")

		assert.NotNil(t, err)
	})
}

func TestUnitCheckoutSnapshotDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)

	mt.Run("PutCheckoutSnapshot runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.PutCheckoutSnapshot(&models.CheckoutSnapshotDB{
			ID:        "ORD1",
			Amount:    "10.00",
			Currency:  "USD",
			ExpiresAt: time.Now().Add(12 * time.Hour),
		})

		assert.Nil(t, err)
	})

	mt.Run("GetCheckoutSnapshot returns a fresh snapshot", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "databaseName.checkout_cache", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "ORD1"},
			{Key: "amount", Value: "10.00"},
			{Key: "currency", Value: "USD"},
			{Key: "expires_at", Value: time.Now().Add(time.Hour)},
		}))

		mongoService.db = mt.DB

		snapshot, err := mongoService.GetCheckoutSnapshot("ORD1")

		assert.Nil(t, err)
		assert.Equal(t, "10.00", snapshot.Amount)
	})

	mt.Run("GetCheckoutSnapshot treats an expired snapshot as missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "databaseName.checkout_cache", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "ORD1"},
			{Key: "amount", Value: "10.00"},
			{Key: "expires_at", Value: time.Now().Add(-time.Hour)},
		}))

		mongoService.db = mt.DB

		snapshot, err := mongoService.GetCheckoutSnapshot("ORD1")

		assert.Nil(t, err)
		assert.Nil(t, snapshot)
	})

	mt.Run("GetCheckoutSnapshot returns nil for an unknown id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "databaseName.checkout_cache", mtest.FirstBatch))

		mongoService.db = mt.DB

		snapshot, err := mongoService.GetCheckoutSnapshot("missing")

		assert.Nil(t, err)
		assert.Nil(t, snapshot)
	})

	mt.Run("GetCheckoutSnapshot runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		_, err := mongoService.GetCheckoutSnapshot("ORD1")

		assert.NotNil(t, err)
	})
}
