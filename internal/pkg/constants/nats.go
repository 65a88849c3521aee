package constants

// Event subjects. NATS subjects and NSQ topics share these names.
const (
	// Transactions
	SubjectTransactionCreated = "transaction.created"
	SubjectTransactionUpdated = "transaction.updated"
	SubjectTransactionDeleted = "transaction.deleted"

	// Users
	SubjectUserPasswordReset = "user.password_reset"
)

// TransactionSubjects lists every transaction lifecycle subject
var TransactionSubjects = []string{
	SubjectTransactionCreated,
	SubjectTransactionUpdated,
	SubjectTransactionDeleted,
}

// NATS queue group shared by notifier replicas
const QueueGroupNotifier = "notifier"
