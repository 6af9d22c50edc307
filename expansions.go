package tweetkit

import (
	"github.com/google/uuid"

	"github.com/tweetkit/tweetkit-go/pkg/types"
)

// indexKeys names the natural key field per include category. Media is the
// only category not keyed by id.
var indexKeys = map[string]string{
	"media":  "media_key",
	"places": "id",
	"polls":  "id",
	"topics": "id",
	"tweets": "id",
	"users":  "id",
	"lists":  "id",
	"spaces": "id",
}

// categoryFor maps entity-type tags to include categories.
var categoryFor = map[string]string{
	"Media": "media",
	"Place": "places",
	"Poll":  "polls",
	"Topic": "topics",
	"Tweet": "tweets",
	"User":  "users",
	"List":  "lists",
	"Space": "spaces",
}

// Expansions is the reference index for one response: every included
// side-object keyed by category and natural key, plus the primary payload
// itself so same-collection references (a tweet quoting its own thread)
// resolve. Built per response and discarded after denormalization.
type Expansions struct {
	index map[string]map[string]types.Object
}

// NewExpansions indexes every entity of an includes block.
func NewExpansions(includes types.Object) *Expansions {
	e := &Expansions{index: make(map[string]map[string]types.Object)}
	for category, entities := range includes {
		e.Add(entities, category)
	}
	return e
}

// Add registers entities under dtype, which may be a type tag ("Tweet") or
// an include category ("tweets"). Duplicate keys overwrite: the same user
// arrives once per tweet that references it.
func (e *Expansions) Add(data any, dtype string) {
	switch data := data.(type) {
	case []any:
		for _, item := range data {
			e.Add(item, dtype)
		}
	case map[string]any:
		e.addObject(types.Object(data), dtype)
	case types.Object:
		e.addObject(data, dtype)
	}
}

func (e *Expansions) addObject(obj types.Object, dtype string) {
	category := dtype
	if mapped, ok := categoryFor[dtype]; ok {
		category = mapped
	}
	bucket := e.index[category]
	if bucket == nil {
		bucket = make(map[string]types.Object)
		e.index[category] = bucket
	}

	key := ""
	if field, ok := indexKeys[category]; ok {
		key = types.Key(obj[field])
	}
	if key == "" {
		// Categories without a known key field still get indexed so the
		// entities stay reachable.
		key = uuid.NewString()
	}
	bucket[key] = obj
}

// Lookup returns the raw indexed entity, or nil when the category or key is
// absent.
func (e *Expansions) Lookup(category, key string) types.Object {
	bucket := e.index[category]
	if bucket == nil {
		return nil
	}
	return bucket[key]
}

// resolved returns a copy of the referenced entity, or an untyped nil: the
// explicit marker for a reference that was not included in the response.
func (e *Expansions) resolved(category, key string) any {
	obj := e.Lookup(category, key)
	if obj == nil {
		return nil
	}
	return types.DeepCopy(obj)
}

// Expand returns a denormalized deep copy of data with the id references
// its entity type defines replaced by the entities they point to. The input
// is never mutated. Unknown type tags pass through, still copied.
func (e *Expansions) Expand(data any, dtype string) any {
	switch data := data.(type) {
	case []any:
		out := make([]any, len(data))
		for i, item := range data {
			out[i] = e.Expand(item, dtype)
		}
		return out
	case map[string]any:
		return e.expandObject(types.Object(data), dtype)
	case types.Object:
		return e.expandObject(data, dtype)
	default:
		return data
	}
}

func (e *Expansions) expandObject(obj types.Object, dtype string) types.Object {
	out := obj.Clone()
	switch dtype {
	case "Tweet":
		e.expandTweet(out)
	case "User":
		e.expandUser(out)
	case "Space":
		e.expandSpace(out)
	case "List", "Media", "Place":
		e.expandOwner(out)
	}
	return out
}

func (e *Expansions) expandTweet(tweet types.Object) {
	if attachments := tweet.GetObject("attachments"); attachments != nil {
		polls := make([]any, 0)
		for _, id := range attachments.GetStrings("poll_ids") {
			polls = append(polls, e.resolved("polls", id))
		}
		attachments["polls"] = polls

		media := make([]any, 0)
		for _, key := range attachments.GetStrings("media_keys") {
			media = append(media, e.resolved("media", key))
		}
		attachments["media"] = media
	}

	selfID := tweet.GetString("id")
	for _, ref := range tweet.GetList("referenced_tweets") {
		refObj := asObject(ref)
		if refObj == nil {
			continue
		}
		id := types.Key(refObj["id"])
		if id != "" && id == selfID {
			// A tweet can reference itself; resolve to this very copy.
			refObj["tweet"] = tweet
		} else {
			refObj["tweet"] = e.resolved("tweets", id)
		}
	}

	if tweet.Has("author_id") {
		tweet["author"] = e.resolved("users", tweet.GetString("author_id"))
	}
	if tweet.Has("in_reply_to_user_id") {
		tweet["in_reply_to_user"] = e.resolved("users", tweet.GetString("in_reply_to_user_id"))
	}
	if geo := tweet.GetObject("geo"); geo != nil && geo.Has("place_id") {
		geo["place"] = e.resolved("places", geo.GetString("place_id"))
	}
}

func (e *Expansions) expandUser(user types.Object) {
	if user.Has("pinned_tweet_id") {
		user["pinned_tweet"] = e.resolved("tweets", user.GetString("pinned_tweet_id"))
	}
}

var spaceUserRefs = []struct {
	src, dst string
}{
	{"host_ids", "hosts"},
	{"invited_user_ids", "invited_users"},
	{"speaker_ids", "speakers"},
}

func (e *Expansions) expandSpace(space types.Object) {
	for _, ref := range spaceUserRefs {
		if !space.Has(ref.src) {
			continue
		}
		users := make([]any, 0)
		for _, id := range space.GetStrings(ref.src) {
			users = append(users, e.resolved("users", id))
		}
		space[ref.dst] = users
	}
}

func (e *Expansions) expandOwner(obj types.Object) {
	if obj.Has("owner_id") {
		obj["owner"] = e.resolved("users", obj.GetString("owner_id"))
	}
}

func asObject(v any) types.Object {
	switch v := v.(type) {
	case types.Object:
		return v
	case map[string]any:
		return types.Object(v)
	}
	return nil
}
