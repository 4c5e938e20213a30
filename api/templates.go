package api

// The submitted password is intentionally absent from the rendered page.
const indexTemplate = `<!DOCTYPE html>
<html>
<head>
  <title>Password Strength Checker</title>
  <style>
    body { font-family: sans-serif; max-width: 40em; margin: 2em auto; }
    .score { font-size: 1.4em; font-weight: bold; }
    ul { margin: 0.5em 0; }
  </style>
</head>
<body>
  <h1>Password Strength Checker</h1>
  <form method="POST" action="/">
    <input type="password" name="password" autocomplete="off" autofocus>
    <button type="submit">Check</button>
  </form>
{{with .Result}}
  <hr>
  <p class="score">{{.Score}}/10 &mdash; {{.Label}}</p>
  <p>Entropy estimate: {{.Entropy}} bits</p>
  {{if .BreachKnown}}<p>Seen in {{.BreachCount}} breaches.</p>{{else}}<p>Breach count unknown.</p>{{end}}
  {{if .Reasons}}
  <h2>Weaknesses</h2>
  <ul>{{range .Reasons}}<li>{{.}}</li>{{end}}</ul>
  {{end}}
  <h2>Tips</h2>
  <ul>{{range .Tips}}<li>{{.}}</li>{{end}}</ul>
{{end}}
</body>
</html>
`
