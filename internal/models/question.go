package models

// NotAnswered is the answer placeholder a question carries until its receiver
// answers it. It is written to the question file verbatim.
const NotAnswered = "Not answered"

// Question is a single question, either top-level ("parent") or a follow-up
// inside a thread. Sender and Receiver point at records owned by the user
// directory; a question never outlives them within a session. Parent and
// thread questions share one id space.
type Question struct {
	ID       int
	Text     string
	Answer   string
	Sender   *User
	Receiver *User
}
