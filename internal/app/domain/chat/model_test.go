package chat

import "testing"

func TestConversationIDIsOrderIndependent(t *testing.T) {
	if ConversationID("owner-1", "seeker-1") != ConversationID("seeker-1", "owner-1") {
		t.Fatal("both participants must resolve the same conversation")
	}
	if ConversationID("a", "b") != "a:b" {
		t.Fatalf("unexpected key %q", ConversationID("a", "b"))
	}
}

func TestInputValidate(t *testing.T) {
	valid := Input{ConversationID: "a:b", SenderID: "a", ReceiverID: "b", Body: "hello"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	for name, mutate := range map[string]func(*Input){
		"missing conversation": func(in *Input) { in.ConversationID = "" },
		"missing sender":       func(in *Input) { in.SenderID = "" },
		"missing receiver":     func(in *Input) { in.ReceiverID = "" },
		"blank body":           func(in *Input) { in.Body = "   " },
	} {
		in := valid
		mutate(&in)
		if err := in.Validate(); err == nil {
			t.Errorf("%s: want validation error", name)
		}
	}
}
