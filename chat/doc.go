// Package chat connects the bot to Twitch IRC.
//
// Every incoming message runs through three stages in order: if a trivia
// question is active the message is checked as an answer, then prefixed
// commands are dispatched, and finally plain messages are scanned for verse
// references to answer automatically. Replies go back to the channel the
// message came from; scheduled announcements fan out to every joined
// channel via Broadcast.
//
// Credentials: the IRC client requires a bot username and an OAuth token
// with chat:read/chat:edit scopes (TWITCH_USERNAME, TWITCH_OAUTH).
package chat
