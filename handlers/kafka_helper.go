package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"

	"github.com/adilrabid/ppcp-checkout-api/config"
	"github.com/adilrabid/ppcp-checkout-api/models"
)

// ProducerTopic is the topic to which the transaction processed kafka message is sent
const ProducerTopic = "transaction-processed"

// ProducerSchemaName is the schema which will be used to send the transaction processed kafka message with
const ProducerSchemaName = "transaction-processed"

// transactionProcessed represents the avro schema held in the schema registry
type transactionProcessed struct {
	TransactionID string `avro:"transaction_id"`
	OrderID       string `avro:"order_id"`
	Gateway       string `avro:"gateway"`
	PayerEmail    string `avro:"payer_email"`
	Amount        string `avro:"amount"`
	Currency      string `avro:"currency"`
}

// produceTransactionMessage handles creating a producer, marshalling the
// transaction into the correct avro schema and sending the message to the
// topic defined in ProducerTopic
func produceTransactionMessage(record *models.TransactionRecord) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("error getting config for kafka message production: [%v]", err)
	}

	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}
	transactionProcessedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: transactionProcessedSchema,
	}

	message, err := prepareKafkaMessage(record, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceTransactionMessage() to allow
// unit testing of the non-kafka portion of code
func prepareKafkaMessage(record *models.TransactionRecord, transactionProcessedSchema avro.Schema) (*producer.Message, error) {
	transactionProcessedMessage := transactionProcessed{
		TransactionID: record.TxnID,
		OrderID:       record.PaypalOrderID,
		Gateway:       record.Gateway,
		PayerEmail:    record.PayerEmail,
		Amount:        record.McGross,
		Currency:      record.McCurrency,
	}

	messageBytes, err := transactionProcessedSchema.Marshal(transactionProcessedMessage)
	if err != nil {
		return nil, fmt.Errorf("error marshalling transaction processed message: [%v]", err)
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
