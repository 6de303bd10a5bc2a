package handlers

import (
	"testing"

	"github.com/companieshouse/chs.go/avro"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/adilrabid/ppcp-checkout-api/models"
)

var transactionProcessedAvroSchema = `{
	"type": "record",
	"name": "transaction_processed",
	"namespace": "transactions",
	"fields": [
		{"name": "transaction_id", "type": "string"},
		{"name": "order_id", "type": "string"},
		{"name": "gateway", "type": "string"},
		{"name": "payer_email", "type": "string"},
		{"name": "amount", "type": "string"},
		{"name": "currency", "type": "string"}
	]
}`

func TestUnitPrepareKafkaMessage(t *testing.T) {
	Convey("A transaction record marshals into a message for the producer topic", t, func() {
		record := &models.TransactionRecord{
			TxnID:         "CAP1",
			PaypalOrderID: "ORD1",
			Gateway:       "paypal_ppcp",
			PayerEmail:    "jane.doe@example.com",
			McGross:       "10.00",
			McCurrency:    "USD",
		}

		message, err := prepareKafkaMessage(record, avro.Schema{Definition: transactionProcessedAvroSchema})

		So(err, ShouldBeNil)
		So(message.Topic, ShouldEqual, ProducerTopic)
		So(message.Value, ShouldNotBeEmpty)
	})
}
