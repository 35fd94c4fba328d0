package conn

import "testing"

func TestStoreOpenGet(t *testing.T) {
	s := NewStore()

	if s.Get(0x0040) != nil {
		t.Fatal("Expected nil for unknown handle")
	}

	c := s.Open(0x0040, "00:11:22:33:44:55", "66:77:88:99:AA:BB")
	if c.Handle != 0x0040 {
		t.Errorf("Handle = 0x%04x, want 0x0040", c.Handle)
	}

	got := s.Get(0x0040)
	if got != c {
		t.Fatal("Get returned a different connection")
	}
	if got.Peer != "66:77:88:99:AA:BB" {
		t.Errorf("Peer = %s, want 66:77:88:99:AA:BB", got.Peer)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStoreCloseRunsDestroy(t *testing.T) {
	s := NewStore()
	c := s.Open(1, "a", "b")

	destroyed := 0
	c.SetData("state", func(v interface{}) {
		if v.(string) != "state" {
			t.Errorf("destroy got %v, want state", v)
		}
		destroyed++
	})

	if c.Data().(string) != "state" {
		t.Errorf("Data = %v, want state", c.Data())
	}

	s.Close(1)
	if destroyed != 1 {
		t.Errorf("destroy ran %d times, want 1", destroyed)
	}
	if s.Get(1) != nil {
		t.Error("Expected connection to be gone after Close")
	}
	if c.Data() != nil {
		t.Error("Expected data to be released")
	}

	// Closing again is a no-op
	s.Close(1)
	if destroyed != 1 {
		t.Errorf("destroy ran %d times after second Close, want 1", destroyed)
	}
}

func TestStoreReopenReleasesOld(t *testing.T) {
	s := NewStore()
	old := s.Open(7, "a", "b")

	destroyed := false
	old.SetData(1, func(interface{}) { destroyed = true })

	c := s.Open(7, "a", "c")
	if !destroyed {
		t.Error("Expected previous connection state to be destroyed")
	}
	if c.Data() != nil {
		t.Error("Expected fresh connection without data")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}
